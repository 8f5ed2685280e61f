package web

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/xavierca1/template-sender/internal/entity"
)

type IndexPageData struct {
	WebhookURL     string
	Templates      []entity.Option
	PhoneNumberIDs []entity.Option
}

var indexPageTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="pt-BR">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Enviar Template WhatsApp</title>
    <style>
      * { box-sizing: border-box; }
      body {
        margin: 0;
        font-family: ui-sans-serif, system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif;
        background: #f0f4f8;
        color: #1a2433;
      }
      .card {
        max-width: 560px;
        margin: 48px auto;
        background: #fff;
        border: 1px solid #dde5ee;
        border-radius: 10px;
        box-shadow: 0 6px 18px rgba(26, 36, 51, 0.08);
        padding: 28px;
      }
      h1 { font-size: 20px; margin: 0 0 4px; }
      .subtitle { color: #5c6b80; font-size: 13px; margin: 0 0 20px; }
      label { display: block; font-size: 13px; font-weight: 600; margin: 14px 0 4px; }
      select, input {
        width: 100%;
        padding: 9px 10px;
        font-size: 14px;
        border: 1px solid #c4cfdc;
        border-radius: 6px;
        background: #fff;
      }
      .field-error { color: #c0392b; font-size: 12px; margin-top: 4px; min-height: 14px; }
      button {
        margin-top: 20px;
        width: 100%;
        padding: 11px;
        font-size: 15px;
        font-weight: 600;
        color: #fff;
        background: #1d8a4e;
        border: 0;
        border-radius: 6px;
        cursor: pointer;
      }
      button:disabled { background: #8fb8a1; cursor: wait; }
      .spinner {
        display: inline-block;
        width: 13px;
        height: 13px;
        margin-right: 6px;
        border: 2px solid rgba(255, 255, 255, 0.4);
        border-top-color: #fff;
        border-radius: 50%;
        animation: spin 0.8s linear infinite;
        vertical-align: -2px;
      }
      @keyframes spin { to { transform: rotate(360deg); } }
      .results { margin-top: 24px; }
      .results h2 { font-size: 14px; margin: 16px 0 6px; }
      pre {
        background: #0f1729;
        color: #d8e2f1;
        font-size: 12px;
        padding: 12px;
        border-radius: 6px;
        overflow-x: auto;
        white-space: pre-wrap;
      }
      .error-block {
        background: #fdecea;
        color: #c0392b;
        border: 1px solid #f3c1bb;
        border-radius: 6px;
        padding: 12px;
        font-size: 13px;
      }
      #toast {
        position: fixed;
        right: 20px;
        bottom: 20px;
        padding: 12px 16px;
        border-radius: 6px;
        color: #fff;
        font-size: 13px;
        opacity: 0;
        transition: opacity 0.3s;
        pointer-events: none;
      }
      #toast.show { opacity: 1; }
      #toast.success { background: #1d8a4e; }
      #toast.failure { background: #c0392b; }
      .hidden { display: none; }
    </style>
  </head>
  <body>
    <div class="card">
      <h1>Enviar Template WhatsApp</h1>
      <p class="subtitle">Webhook: {{.WebhookURL}}</p>

      <form id="send-form" novalidate>
        <label for="template">Template</label>
        <select id="template" name="template">
          <option value="">Selecione um template</option>
          {{range .Templates}}<option value="{{.Value}}">{{.Label}}</option>
          {{end}}
        </select>
        <div class="field-error" id="template-error"></div>

        <label for="phone-number-id">ID do telefone (remetente)</label>
        <select id="phone-number-id" name="phone_number_id">
          <option value="">Selecione um ID de telefone</option>
          {{range .PhoneNumberIDs}}<option value="{{.Value}}">{{.Label}}</option>
          {{end}}
        </select>
        <div class="field-error" id="phone-number-id-error"></div>

        <label for="recipient">Número do destinatário</label>
        <input id="recipient" name="recipient_phone" inputmode="numeric"
               placeholder="5599999999999" autocomplete="off" />
        <div class="field-error" id="recipient-error"></div>

        <button id="submit-btn" type="submit">Enviar Mensagem</button>
      </form>

      <div class="results">
        <div id="payload-section" class="hidden">
          <h2>Payload enviado</h2>
          <pre id="payload-json"></pre>
        </div>
        <div id="response-section" class="hidden">
          <h2>Resposta do webhook</h2>
          <pre id="response-json"></pre>
        </div>
        <div id="error-section" class="hidden">
          <div class="error-block" id="error-text"></div>
        </div>
      </div>
    </div>

    <div id="toast"></div>

    <script>
      (function () {
        var form = document.getElementById("send-form");
        var btn = document.getElementById("submit-btn");
        var recipient = document.getElementById("recipient");
        var toastTimer = null;

        // Tudo que não for dígito é removido na digitação
        recipient.addEventListener("input", function () {
          recipient.value = recipient.value.replace(/\D/g, "");
        });

        function setFieldError(id, message) {
          document.getElementById(id + "-error").textContent = message || "";
        }

        function showToast(message, kind) {
          var toast = document.getElementById("toast");
          toast.textContent = message;
          toast.className = "show " + kind;
          if (toastTimer) clearTimeout(toastTimer);
          toastTimer = setTimeout(function () { toast.className = ""; }, 4000);
        }

        function showSection(id, visible) {
          document.getElementById(id).className = visible ? "" : "hidden";
        }

        function validate(values) {
          var ok = true;
          if (!values.template) {
            setFieldError("template", "Por favor, selecione um template");
            ok = false;
          }
          if (!values.phone_number_id) {
            setFieldError("phone-number-id", "Por favor, selecione um ID de telefone");
            ok = false;
          }
          if (!values.recipient_phone) {
            setFieldError("recipient", "Por favor, insira o número do destinatário");
            ok = false;
          } else if (!/^55\d{10,11}$/.test(values.recipient_phone)) {
            setFieldError("recipient", "Formato inválido. Use: 5599999999999 (somente números)");
            ok = false;
          }
          return ok;
        }

        function renderOutcome(data) {
          if (data.sent_payload) {
            document.getElementById("payload-json").textContent =
              JSON.stringify(data.sent_payload, null, 2);
            showSection("payload-section", true);
          }
          if (data.webhook_response) {
            document.getElementById("response-json").textContent =
              JSON.stringify(data.webhook_response, null, 2);
            showSection("response-section", true);
          }
          if (data.error) {
            document.getElementById("error-text").textContent = data.error;
            showSection("error-section", true);
          }
        }

        form.addEventListener("submit", function (event) {
          event.preventDefault();

          setFieldError("template", "");
          setFieldError("phone-number-id", "");
          setFieldError("recipient", "");

          var values = {
            template: document.getElementById("template").value,
            phone_number_id: document.getElementById("phone-number-id").value,
            recipient_phone: recipient.value
          };

          // Input inválido nunca chega na rede
          if (!validate(values)) return;

          showSection("payload-section", false);
          showSection("response-section", false);
          showSection("error-section", false);

          btn.disabled = true;
          btn.innerHTML = '<span class="spinner"></span>Enviando...';

          fetch("/api/send", {
            method: "POST",
            headers: { "Content-Type": "application/json" },
            body: JSON.stringify(values)
          })
            .then(function (resp) { return resp.json(); })
            .then(function (data) {
              renderOutcome(data);
              if (data.error || data.message) {
                showToast(data.error || data.message, "failure");
              } else {
                showToast("Mensagem enviada com sucesso!", "success");
              }
            })
            .catch(function (err) {
              var message = err && err.message ? err.message : "Erro desconhecido ao enviar";
              document.getElementById("error-text").textContent = message;
              showSection("error-section", true);
              showToast(message, "failure");
            })
            .finally(function () {
              btn.disabled = false;
              btn.textContent = "Enviar Mensagem";
            });
        });
      })();
    </script>
  </body>
</html>
`))

type IndexHandler struct {
	WebhookURL string
}

func NewIndexHandler(webhookURL string) *IndexHandler {
	return &IndexHandler{WebhookURL: webhookURL}
}

// Handle (GET /)
// Renderiza o formulário com os catálogos fixos já embutidos
func (h *IndexHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	data := IndexPageData{
		WebhookURL:     h.WebhookURL,
		Templates:      entity.TemplateOptions,
		PhoneNumberIDs: entity.PhoneNumberIDOptions,
	}
	if err := indexPageTmpl.Execute(&buf, data); err != nil {
		http.Error(w, "Erro ao renderizar página", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}
