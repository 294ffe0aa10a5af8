package dao

import (
	"log"
	"testing"
	"time"

	"github.com/dilshat/campaign-sender/model"
	"github.com/stretchr/testify/require"
)

const (
	SENDER  = "996555112233"
	TEXT    = "Hello World!"
	SENDER2 = "996700445566"
	TEXT2   = "Hello Earth!"
)

func prepareMessages(t errorHandler) (Db, func()) {
	db, cleanup := createDB(t)

	//populate db, second message of SENDER is older than the first
	msg := &model.Message{Sender: SENDER, Text: TEXT, Direction: model.OUTGOING, CreatedAt: time.Now()}
	err := db.Save(msg)
	if err != nil {
		log.Fatal(err)
	}
	msg = &model.Message{Sender: SENDER, Text: TEXT2, Direction: model.INCOMING, CreatedAt: time.Now().Add(-time.Hour)}
	err = db.Save(msg)
	if err != nil {
		log.Fatal(err)
	}
	msg = &model.Message{Sender: SENDER2, Text: TEXT2, Direction: model.OUTGOING, CreatedAt: time.Now()}
	err = db.Save(msg)
	if err != nil {
		log.Fatal(err)
	}

	return db, cleanup
}

func TestMessageDao_Create(t *testing.T) {
	db, cleanup := createDB(t)
	defer cleanup()
	msgDao := NewMessageDao(db)

	id, err := msgDao.Create(SENDER, TEXT, model.OUTGOING)

	require.NoError(t, err)
	require.True(t, id > 0)

	messages, err := msgDao.GetAllBySender(SENDER)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	require.Equal(t, model.OUTGOING, messages[0].Direction)
}

func TestMessageDao_GetAllBySenderOrdersByTime(t *testing.T) {
	db, cleanup := prepareMessages(t)
	defer cleanup()
	msgDao := NewMessageDao(db)

	messages, err := msgDao.GetAllBySender(SENDER)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	//ascending by creation time, the older incoming message comes first
	require.Equal(t, TEXT2, messages[0].Text)
	require.Equal(t, TEXT, messages[1].Text)
	require.True(t, messages[0].CreatedAt.Before(messages[1].CreatedAt))
}

func TestMessageDao_GetAllBySenderUnknown(t *testing.T) {
	db, cleanup := prepareMessages(t)
	defer cleanup()
	msgDao := NewMessageDao(db)

	messages, err := msgDao.GetAllBySender("unknown")

	require.NoError(t, err)
	require.Empty(t, messages)
}

func TestMessageDao_GetDistinctSenders(t *testing.T) {
	db, cleanup := prepareMessages(t)
	defer cleanup()
	msgDao := NewMessageDao(db)

	senders, err := msgDao.GetDistinctSenders()

	require.NoError(t, err)
	require.Equal(t, []string{SENDER, SENDER2}, senders)
}

func TestMessageDao_GetAll(t *testing.T) {
	db, cleanup := prepareMessages(t)
	defer cleanup()
	msgDao := NewMessageDao(db)

	all, err := msgDao.GetAll()

	require.NoError(t, err)
	require.Equal(t, 3, len(all))
}
