package events

import (
	"fmt"
	"strings"
)

// MessageTemplateEngine provides dynamic message generation for events.
type MessageTemplateEngine struct {
	templates map[EventReason]string
}

// NewMessageTemplateEngine creates a new message template engine with default templates.
func NewMessageTemplateEngine() *MessageTemplateEngine {
	engine := &MessageTemplateEngine{
		templates: make(map[EventReason]string),
	}
	engine.loadDefaultTemplates()
	return engine
}

func (e *MessageTemplateEngine) loadDefaultTemplates() {
	e.templates[ReasonPullSecretCreated] = "Pull secret for registry {{.Registry}} created in namespace {{.Namespace}}"
	e.templates[ReasonPullSecretUpdated] = "Pull secret for registry {{.Registry}} updated with new credentials"
	e.templates[ReasonPullSecretBound] = "Pull secret {{.Registry}} added to imagePullSecrets of serviceaccount {{.ServiceAccount}}"
	e.templates[ReasonPullSecretSyncFailed] = "Syncing pull secret for registry {{.Registry}} failed{{if .Error}}: {{.Error}}{{end}}"
}

// Render generates a message for the given event reason and data.
func (e *MessageTemplateEngine) Render(reason EventReason, data EventData) string {
	template, exists := e.templates[reason]
	if !exists {
		return fmt.Sprintf("Event: %s for %s/%s", string(reason), data.Namespace, data.Name)
	}
	return e.renderTemplate(template, data)
}

// SetTemplate allows customizing the message template for a specific event reason.
func (e *MessageTemplateEngine) SetTemplate(reason EventReason, template string) {
	e.templates[reason] = template
}

// GetTemplate returns the template for a specific event reason.
func (e *MessageTemplateEngine) GetTemplate(reason EventReason) (string, bool) {
	template, exists := e.templates[reason]
	return template, exists
}

// renderTemplate performs simple variable substitution with EventData.
// Only {{.Field}} and {{if .Error}}...{{end}} are understood.
func (e *MessageTemplateEngine) renderTemplate(template string, data EventData) string {
	result := strings.NewReplacer(
		"{{.Name}}", data.Name,
		"{{.Namespace}}", data.Namespace,
		"{{.Registry}}", data.Registry,
		"{{.ServiceAccount}}", data.ServiceAccount,
		"{{.Error}}", data.Error,
	).Replace(template)

	return renderConditional(result, "{{if .Error}}", "{{end}}", data.Error != "")
}

// renderConditional keeps or drops the first startMarker...endMarker block.
func renderConditional(template, startMarker, endMarker string, condition bool) string {
	startIndex := strings.Index(template, startMarker)
	if startIndex == -1 {
		return template
	}

	endIndex := strings.Index(template[startIndex:], endMarker)
	if endIndex == -1 {
		return template
	}
	endIndex += startIndex

	before := template[:startIndex]
	after := template[endIndex+len(endMarker):]
	if condition {
		return before + template[startIndex+len(startMarker):endIndex] + after
	}
	return before + after
}
