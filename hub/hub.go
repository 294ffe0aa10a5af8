package hub

import (
	"github.com/cskr/pubsub"
	"github.com/dilshat/campaign-sender/service/dto"
)

const (
	EVENTS = "events"

	//buffer per attached observer, slow consumers fall behind before they block publishers
	capacity = 100
)

//Hub fans progress events out to every currently attached observer.
//Attach, Detach and Publish are safe to call concurrently.
type Hub interface {
	//Attach registers a new observer and returns its event channel
	Attach() chan interface{}
	//Detach unregisters the observer and closes its channel
	Detach(ch chan interface{})
	//Publish delivers the event to all observers attached at the moment of the call
	Publish(event dto.ProgressEvent)
}

func NewHub() Hub {
	return &hub{ps: pubsub.New(capacity)}
}

type hub struct {
	ps *pubsub.PubSub
}

func (h *hub) Attach() chan interface{} {
	return h.ps.Sub(EVENTS)
}

func (h *hub) Detach(ch chan interface{}) {
	h.ps.Unsub(ch, EVENTS)
}

func (h *hub) Publish(event dto.ProgressEvent) {
	h.ps.Pub(event, EVENTS)
}
