package notify

import (
	"bytes"
	"io/ioutil"
	"sync"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAttachConsoleRendersNotices(t *testing.T) {
	myassert := assert.New(t)
	log := logrus.New()
	log.Out = ioutil.Discard
	out := new(lockedBuffer)

	bus := EventBus.New()
	myassert.NoError(AttachConsole(bus, out, log))

	Publish(bus, TopicSend, Notice{Title: "wallet-cli send", Body: "transaction abc broadcast", Success: true})
	Publish(bus, TopicSync, Notice{Title: "wallet-cli sync", Body: "ERROR(engine): boom", Success: false})
	bus.WaitAsync()

	myassert.Contains(out.String(), "[ok] wallet-cli send: transaction abc broadcast")
	myassert.Contains(out.String(), "[failed] wallet-cli sync: ERROR(engine): boom")
}

func TestPublishToleratesNilBus(t *testing.T) {
	Publish(nil, TopicSend, Notice{})
}
