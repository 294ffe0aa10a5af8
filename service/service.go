package service

import (
	"time"

	"github.com/dchest/uniuri"
	"github.com/dilshat/campaign-sender/dao"
	"github.com/dilshat/campaign-sender/hub"
	"github.com/dilshat/campaign-sender/model"
	"github.com/dilshat/campaign-sender/service/dto"
	"github.com/dilshat/campaign-sender/wa"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type InvalidPayloadErr struct {
	message string
}

func (e *InvalidPayloadErr) Error() string {
	return e.message
}

func NewInvalidPayloadError(msg string) *InvalidPayloadErr {
	return &InvalidPayloadErr{message: msg}
}

type TokenMismatchErr struct {
}

func (e *TokenMismatchErr) Error() string {
	return "Verification token mismatch"
}

type Service interface {
	//StartCampaign validates the campaign request and launches the run in the background.
	//It returns immediately, the run reports through the progress hub only.
	StartCampaign(campaign dto.CampaignRequest) (dto.CampaignAck, error)
	//GetConversations returns all known conversation identifiers
	GetConversations() ([]string, error)
	//GetConversationHistory returns the messages of one conversation ordered by time ascending
	GetConversationHistory(senderId string) ([]dto.Message, error)
	//SendReply sends free text to the recipient and records it asynchronously
	SendReply(senderId string, reply dto.Reply) error
	GetTemplates() ([]dto.Template, error)
	CreateTemplate(template dto.TemplateCreate) (dto.Template, error)
	UpdateTemplate(id uint32, template dto.TemplateCreate) error
	DeleteTemplate(id uint32) error
	//HandleIncomingMessage extracts sender and text from the provider webhook payload
	//and records them as an incoming message
	HandleIncomingMessage(payload dto.WebhookPayload) error
	//VerifyWebhook performs the provider's challenge/response subscription handshake
	VerifyWebhook(mode, token, challenge string) (string, error)
}

type service struct {
	gateway      wa.Client
	messageDao   dao.MessageDao
	templateDao  dao.TemplateDao
	hub          hub.Hub
	verifyToken  string
	sendInterval time.Duration
	validate     *validator.Validate
}

func NewService(gateway wa.Client, messageDao dao.MessageDao, templateDao dao.TemplateDao, eventHub hub.Hub, verifyToken string, sendIntervalMs int) Service {
	return &service{
		gateway:      gateway,
		messageDao:   messageDao,
		templateDao:  templateDao,
		hub:          eventHub,
		verifyToken:  verifyToken,
		sendInterval: time.Duration(sendIntervalMs) * time.Millisecond,
		validate:     validator.New(),
	}
}

func (s *service) StartCampaign(campaign dto.CampaignRequest) (dto.CampaignAck, error) {
	if err := s.validate.Struct(campaign); err != nil {
		return dto.CampaignAck{}, NewInvalidPayloadError("Invalid campaign: " + err.Error())
	}

	//the template body is resolved once per run, a dangling name degrades to an empty body
	templateBody := ""
	tmpl, err := s.templateDao.GetOneByName(campaign.TemplateName)
	if err != nil {
		zap.L().Warn("Template not found, proceeding without body parameters",
			zap.String("template", campaign.TemplateName), zap.Error(err))
	} else {
		templateBody = tmpl.Body
	}

	runId := uniuri.New()
	go s.runCampaign(campaign, templateBody)

	return dto.CampaignAck{RunId: runId, Status: "Campaign has been started in the background."}, nil
}

func (s *service) GetConversations() ([]string, error) {
	return s.messageDao.GetDistinctSenders()
}

func (s *service) GetConversationHistory(senderId string) ([]dto.Message, error) {
	messages, err := s.messageDao.GetAllBySender(senderId)
	if err != nil {
		return nil, err
	}

	history := []dto.Message{}
	for _, msg := range messages {
		history = append(history, dto.Message{
			Text:      msg.Text,
			Timestamp: msg.CreatedAt.Format(time.RFC3339),
			Direction: msg.Direction,
		})
	}

	return history, nil
}

func (s *service) SendReply(senderId string, reply dto.Reply) error {
	if err := s.validate.Struct(reply); err != nil {
		return NewInvalidPayloadError("Invalid reply: " + err.Error())
	}

	err := s.gateway.SendText(senderId, reply.Message)
	if err != nil {
		return err
	}

	//record keeping must not delay the response
	go func() {
		if _, err := s.messageDao.Create(senderId, reply.Message, model.OUTGOING); err != nil {
			zap.L().Error("Error saving outgoing reply", zap.String("sender", senderId), zap.Error(err))
		}
	}()

	return nil
}

func (s *service) GetTemplates() ([]dto.Template, error) {
	templates, err := s.templateDao.GetAll()
	if err != nil {
		return nil, err
	}

	result := []dto.Template{}
	for _, tmpl := range templates {
		result = append(result, dto.Template{Id: tmpl.Id, Name: tmpl.Name, Body: tmpl.Body})
	}

	return result, nil
}

func (s *service) CreateTemplate(template dto.TemplateCreate) (dto.Template, error) {
	if err := s.validate.Struct(template); err != nil {
		return dto.Template{}, NewInvalidPayloadError("Invalid template: " + err.Error())
	}

	id, err := s.templateDao.Create(template.Name, template.Body)
	if err != nil {
		return dto.Template{}, err
	}

	return dto.Template{Id: id, Name: template.Name, Body: template.Body}, nil
}

func (s *service) UpdateTemplate(id uint32, template dto.TemplateCreate) error {
	if err := s.validate.Struct(template); err != nil {
		return NewInvalidPayloadError("Invalid template: " + err.Error())
	}

	return s.templateDao.Update(id, template.Name, template.Body)
}

func (s *service) DeleteTemplate(id uint32) error {
	return s.templateDao.Delete(id)
}

func (s *service) HandleIncomingMessage(payload dto.WebhookPayload) error {
	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			for _, msg := range change.Value.Messages {
				if msg.Type != "text" || msg.From == "" {
					continue
				}
				if _, err := s.messageDao.Create(msg.From, msg.Text.Body, model.INCOMING); err != nil {
					return err
				}
				zap.L().Info("Saved incoming message", zap.String("from", msg.From))
			}
		}
	}

	return nil
}

func (s *service) VerifyWebhook(mode, token, challenge string) (string, error) {
	if mode == "subscribe" && token == s.verifyToken {
		return challenge, nil
	}

	return "", &TokenMismatchErr{}
}
