package model

import "time"

const (
	//message directions
	INCOMING string = "incoming"
	OUTGOING        = "outgoing"
)

type Message struct {
	Id        uint32 `storm:"id,increment"`
	Sender    string `storm:"index"`
	Text      string
	Direction string
	CreatedAt time.Time `storm:"index"`
}
