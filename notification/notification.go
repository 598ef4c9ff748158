package notification

import (
	"net/http"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Severity represents how a toast is rendered by the front end.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
)

// Toast is a transient, dismissible notification attached to a response.
// The message is resolved against the caller's language when the response is written.
type Toast struct {
	Severity Severity
	Key      Key
	Args     []interface{}
}

// Rendered is the wire form of a toast.
type Rendered struct {
	Type    Severity `json:"type"`
	Message string   `json:"message"`
}

func Success(key Key, args ...interface{}) *Toast {
	return &Toast{SeveritySuccess, key, args}
}

func Error(key Key, args ...interface{}) *Toast {
	return &Toast{SeverityError, key, args}
}

func Info(key Key, args ...interface{}) *Toast {
	return &Toast{SeverityInfo, key, args}
}

// Render resolves the toast message with the given printer.
func (t *Toast) Render(p *message.Printer) *Rendered {
	if t == nil {
		return nil
	}

	return &Rendered{
		Type:    t.Severity,
		Message: p.Sprintf(string(t.Key), t.Args...),
	}
}

// Message resolves the toast with the default (Traditional Chinese) catalog.
func (t *Toast) Message() string {
	return DefaultPrinter().Sprintf(string(t.Key), t.Args...)
}

var supported = []language.Tag{
	language.TraditionalChinese,
	language.English,
}

var matcher = language.NewMatcher(supported)

// DefaultPrinter returns the printer for the tool's primary language.
func DefaultPrinter() *message.Printer {
	return message.NewPrinter(language.TraditionalChinese)
}

// PrinterFor picks the catalog language from an Accept-Language header value.
func PrinterFor(acceptLanguage string) *message.Printer {
	if acceptLanguage == "" {
		return DefaultPrinter()
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultPrinter()
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultPrinter()
	}

	return message.NewPrinter(supported[idx])
}

// PrinterForRequest picks the catalog language for an incoming request.
func PrinterForRequest(r *http.Request) *message.Printer {
	if r == nil {
		return DefaultPrinter()
	}

	return PrinterFor(r.Header.Get("Accept-Language"))
}
