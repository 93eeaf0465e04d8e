// Package render turns chat messages into HTML. It holds no state and never
// touches the network: a message plus its own captured creation time in, a
// fragment out.
package render

import (
	"bytes"
	"html/template"
	"time"

	"github.com/docmindhq/docmind/internal/domain"
)

var funcs = template.FuncMap{
	"clock": func(t time.Time) string { return t.Format("15:04:05") },
}

var templates = template.Must(template.New("chat").Funcs(funcs).Parse(`
{{define "message"}}<div class="message message-{{.Role}}">
  <div class="message-content">{{.Content}}</div>
{{- if .Citations}}
  <div class="message-citations">
    <div class="citations-label">Sources:</div>
{{- range .Citations}}
    <div class="citation">
      <div class="citation-title">{{.Title}}</div>
      <div class="citation-excerpt">{{.Excerpt}}</div>
{{- if .URL}}
      <a class="citation-link" href="{{.URL}}" target="_blank" rel="noopener noreferrer">View source</a>
{{- end}}
    </div>
{{- end}}
  </div>
{{- end}}
  <div class="message-time">{{clock .CreatedAt}}</div>
</div>
{{end}}

{{define "transcript"}}{{range .}}{{template "message" .}}{{end}}{{end}}

{{define "page"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>DocMind Chat</title>
  <style>
    body { font-family: sans-serif; margin: 0; background: #f9fafb; }
    header { background: #fff; border-bottom: 1px solid #e5e7eb; padding: 12px 16px; font-weight: bold; }
    #messages { max-width: 720px; margin: 0 auto; padding: 24px 16px 96px; }
    .message { border-radius: 8px; padding: 12px 16px; margin-bottom: 16px; max-width: 85%; }
    .message-user { background: #4f46e5; color: #fff; margin-left: auto; }
    .message-assistant { background: #fff; border: 1px solid #e5e7eb; }
    .message-citations { margin-top: 12px; border-top: 1px solid #e5e7eb; padding-top: 8px; }
    .citations-label { font-weight: bold; font-size: 0.85em; margin-bottom: 6px; }
    .citation { background: #f3f4f6; border-radius: 4px; padding: 8px; margin-bottom: 6px; font-size: 0.85em; }
    .citation-title { font-weight: 500; }
    .citation-excerpt { color: #4b5563; margin-top: 2px; }
    .citation-link { color: #4f46e5; }
    .message-time { font-size: 0.75em; opacity: 0.7; margin-top: 8px; }
    form { position: fixed; bottom: 0; left: 0; right: 0; background: #fff; border-top: 1px solid #e5e7eb; padding: 12px 16px; display: flex; gap: 8px; }
    input[type=text] { flex: 1; padding: 10px; border: 1px solid #d1d5db; border-radius: 6px; }
    button { padding: 10px 20px; background: #4f46e5; color: #fff; border: 0; border-radius: 6px; }
    button:disabled { opacity: 0.5; }
  </style>
</head>
<body>
  <header>DocMind Chat</header>
  <div id="messages">{{template "transcript" .Messages}}</div>
  <form id="chat-form">
    <input type="text" id="chat-input" placeholder="Ask me anything about your knowledge base" autocomplete="off">
    <button type="submit" id="chat-send">Send</button>
  </form>
  <script>
    const form = document.getElementById("chat-form");
    const input = document.getElementById("chat-input");
    const send = document.getElementById("chat-send");
    let conversationId = {{.ConversationID}};
    form.addEventListener("submit", async (e) => {
      e.preventDefault();
      const message = input.value;
      if (!message.trim() || send.disabled) return;
      send.disabled = true;
      try {
        if (!conversationId) {
          const created = await fetch("/api/conversations", { method: "POST" });
          conversationId = (await created.json()).id;
        }
        await fetch("/api/conversations/" + conversationId + "/messages", {
          method: "POST",
          headers: { "Content-Type": "application/json" },
          body: JSON.stringify({ message }),
        });
        const res = await fetch("/api/conversations/" + conversationId + "/html");
        document.getElementById("messages").innerHTML = await res.text();
        input.value = "";
      } finally {
        send.disabled = false;
      }
    });
  </script>
</body>
</html>
{{end}}`))

// PageData feeds the chat page template.
type PageData struct {
	ConversationID string
	Messages       []domain.ChatMessage
}

// Message renders a single turn. Citations come out in exactly the order
// they carry; the timestamp is the message's own creation time.
func Message(msg domain.ChatMessage) (template.HTML, error) {
	return exec("message", msg)
}

// Transcript renders a message log in order.
func Transcript(messages []domain.ChatMessage) (template.HTML, error) {
	return exec("transcript", messages)
}

// Page renders the full chat page.
func Page(data PageData) (template.HTML, error) {
	return exec("page", data)
}

func exec(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
