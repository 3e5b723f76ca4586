package notify

import (
	"fmt"
	"io"

	"github.com/asaskevich/EventBus"
	"github.com/sirupsen/logrus"
)

// Topics for terminal operation outcomes. Anything may subscribe; delivery is
// best-effort and never feeds back into the operation result.
const (
	TopicSend = "wallet:send:result"
	TopicSync = "wallet:sync:result"
)

type Notice struct {
	Title   string
	Body    string
	Success bool
}

func Publish(bus EventBus.Bus, topic string, n Notice) {
	if bus == nil {
		return
	}
	bus.Publish(topic, n)
}

// AttachConsole subscribes a plain console renderer to the outcome topics.
// It is the fallback for environments without a desktop notifier.
func AttachConsole(bus EventBus.Bus, out io.Writer, log *logrus.Logger) error {
	handler := func(n Notice) {
		tag := "ok"
		if !n.Success {
			tag = "failed"
		}
		if _, err := fmt.Fprintf(out, "[%s] %s: %s\n", tag, n.Title, n.Body); err != nil {
			log.WithField("err", err).Debug("notification dropped")
		}
	}
	if err := bus.SubscribeAsync(TopicSend, handler, false); err != nil {
		return err
	}
	return bus.SubscribeAsync(TopicSync, handler, false)
}
