package notification

import (
	"log"

	"register/src/register/domain/port"
)

// LogNotifier implementa el puerto de notificaciones sobre el log del
// proceso. El front del terminal muestra los toasts por su cuenta a
// partir de las respuestas HTTP; acá queda el rastro del lado servidor.
type LogNotifier struct{}

// NewLogNotifier crea un notificador basado en log.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify registra la notificación. Fire-and-forget, nunca falla.
func (n *LogNotifier) Notify(message string, severity port.Severity) {
	switch severity {
	case port.SeverityError:
		log.Printf("❌ %s", message)
	case port.SeveritySuccess:
		log.Printf("✅ %s", message)
	default:
		log.Printf("ℹ️  %s", message)
	}
}
