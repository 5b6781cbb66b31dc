package notification

import "fmt"

// FallbackActorName is rendered when the actor record cannot be resolved.
// This is a normal rendering path, not an error.
const FallbackActorName = "Someone"

// messageFormats maps an event type to its message template. New event types
// are additive entries here; unknown types render through fallbackFormat.
var messageFormats = map[string]string{
	"follow":  "%s started following you.",
	"post":    "%s published a new post.",
	"comment": "%s commented on your post.",
}

const fallbackFormat = "%s did something (%s)."

// RenderMessage renders the human-readable message for an event type.
func RenderMessage(eventType, actorName string) string {
	if format, ok := messageFormats[eventType]; ok {
		return fmt.Sprintf(format, actorName)
	}

	return fmt.Sprintf(fallbackFormat, actorName, eventType)
}
