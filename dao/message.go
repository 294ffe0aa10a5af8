package dao

import (
	"sort"
	"time"

	"github.com/asdine/storm/v3/q"
	"github.com/dilshat/campaign-sender/model"
)

type MessageDao interface {
	//Create appends a message record for the given conversation and returns its id
	Create(sender, text, direction string) (uint32, error)
	//GetAllBySender returns all messages of a conversation ordered by creation time ascending
	GetAllBySender(sender string) ([]model.Message, error)
	//GetDistinctSenders returns the sorted list of conversation identifiers
	GetDistinctSenders() ([]string, error)
	//GetAll returns all messages
	GetAll() ([]model.Message, error)
}

func NewMessageDao(db Db) MessageDao {
	return &messageDao{db: db}
}

type messageDao struct {
	db Db
}

func (d messageDao) Create(sender, text, direction string) (uint32, error) {
	msg := &model.Message{Sender: sender, Text: text, Direction: direction, CreatedAt: time.Now()}
	err := d.db.Save(msg)
	return msg.Id, err
}

func (d messageDao) GetAllBySender(sender string) ([]model.Message, error) {
	var messages []model.Message
	err := d.db.Select(q.Eq("Sender", sender)).OrderBy("CreatedAt").Find(&messages)
	if err != nil && err.Error() == "not found" {
		return []model.Message{}, nil
	}
	return messages, err
}

func (d messageDao) GetDistinctSenders() ([]string, error) {
	messages, err := d.GetAll()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	senders := []string{}
	for _, msg := range messages {
		if !seen[msg.Sender] {
			seen[msg.Sender] = true
			senders = append(senders, msg.Sender)
		}
	}
	sort.Strings(senders)

	return senders, nil
}

func (d messageDao) GetAll() (messages []model.Message, err error) {
	err = d.db.All(&messages)
	return
}
