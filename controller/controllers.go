package controller

import (
	"net/http"
	"strconv"

	"github.com/dilshat/campaign-sender/hub"
	"github.com/dilshat/campaign-sender/log"
	"github.com/dilshat/campaign-sender/service"
	"github.com/dilshat/campaign-sender/service/dto"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// StartCampaign godoc
// @Summary Start campaign
// @Description Starts a background campaign run over the recipient list
// @Accept json
// @Produce json
// @Param campaign body dto.CampaignRequest true "Campaign"
// @Success 202 {object} dto.CampaignAck
// @Failure 400 "error description"
// @Router /start-campaign [post]
func GetStartCampaignFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		campaign := new(dto.CampaignRequest)
		if err := c.Bind(campaign); err != nil {
			return err
		}

		ack, err := srv.StartCampaign(*campaign)
		if err != nil {
			switch err.(type) {
			case *service.InvalidPayloadErr:
				return c.String(http.StatusBadRequest, err.Error())
			default:
				log.Error.Println(err)
				return c.String(http.StatusInternalServerError, "System malfunction. Please, try later")
			}
		}

		return c.JSON(http.StatusAccepted, ack)
	}
}

// Conversations godoc
// @Summary List conversations
// @Description Lists all known conversation identifiers
// @Produce json
// @Success 200 {object} map[string][]string
// @Failure 500 "error description"
// @Router /conversations [get]
func GetConversationsFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		conversations, err := srv.GetConversations()
		if err != nil {
			log.Error.Println(err)
			return c.String(http.StatusInternalServerError, err.Error())
		}

		return c.JSON(http.StatusOK, map[string][]string{"conversations": conversations})
	}
}

// ConversationHistory godoc
// @Summary Conversation history
// @Description Returns the messages of one conversation ordered by time ascending
// @Produce json
// @Param id path string true "Conversation id"
// @Success 200 {array} dto.Message
// @Failure 500 "error description"
// @Router /conversations/{id} [get]
func GetConversationHistoryFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		history, err := srv.GetConversationHistory(c.Param("id"))
		if err != nil {
			log.Error.Println(err)
			return c.String(http.StatusInternalServerError, err.Error())
		}

		return c.JSON(http.StatusOK, history)
	}
}

// Reply godoc
// @Summary Send reply
// @Description Sends a free-text reply within a conversation
// @Accept json
// @Produce json
// @Param id path string true "Conversation id"
// @Param reply body dto.Reply true "Reply"
// @Success 200 {object} map[string]string
// @Failure 400 "error description"
// @Failure 500 "error description"
// @Router /conversations/{id}/reply [post]
func GetReplyFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		reply := new(dto.Reply)
		if err := c.Bind(reply); err != nil {
			return err
		}

		err := srv.SendReply(c.Param("id"), *reply)
		if err != nil {
			switch err.(type) {
			case *service.InvalidPayloadErr:
				return c.String(http.StatusBadRequest, err.Error())
			default:
				log.Error.Println(err)
				return c.String(http.StatusInternalServerError, err.Error())
			}
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "Reply sent successfully"})
	}
}

// Templates godoc
// @Summary List templates
// @Produce json
// @Success 200 {array} dto.Template
// @Failure 500 "error description"
// @Router /templates [get]
func GetTemplatesFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		templates, err := srv.GetTemplates()
		if err != nil {
			log.Error.Println(err)
			return c.String(http.StatusInternalServerError, "System malfunction. Please, try later")
		}

		return c.JSON(http.StatusOK, templates)
	}
}

// CreateTemplate godoc
// @Summary Create template
// @Accept json
// @Produce json
// @Param template body dto.TemplateCreate true "Template"
// @Success 200 {object} dto.Template
// @Failure 400 "error description"
// @Router /templates [post]
func GetCreateTemplateFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		template := new(dto.TemplateCreate)
		if err := c.Bind(template); err != nil {
			return err
		}

		created, err := srv.CreateTemplate(*template)
		if err != nil {
			switch err.(type) {
			case *service.InvalidPayloadErr:
				return c.String(http.StatusBadRequest, err.Error())
			default:
				log.Error.Println(err)
				return c.String(http.StatusInternalServerError, "System malfunction. Please, try later")
			}
		}

		return c.JSON(http.StatusOK, created)
	}
}

// UpdateTemplate godoc
// @Summary Update template
// @Accept json
// @Param id path int true "Template id"
// @Param template body dto.TemplateCreate true "Template"
// @Success 200 {object} map[string]string
// @Failure 400 "error description"
// @Failure 404 "not found"
// @Router /templates/{id} [put]
func GetUpdateTemplateFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseId(c.Param("id"))
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid template id")
		}

		template := new(dto.TemplateCreate)
		if err := c.Bind(template); err != nil {
			return err
		}

		err = srv.UpdateTemplate(id, *template)
		if err != nil {
			return templateErrResponse(c, err)
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "success"})
	}
}

// DeleteTemplate godoc
// @Summary Delete template
// @Param id path int true "Template id"
// @Success 200 {object} map[string]string
// @Failure 400 "error description"
// @Failure 404 "not found"
// @Router /templates/{id} [delete]
func GetDeleteTemplateFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseId(c.Param("id"))
		if err != nil {
			return c.String(http.StatusBadRequest, "Invalid template id")
		}

		err = srv.DeleteTemplate(id)
		if err != nil {
			return templateErrResponse(c, err)
		}

		return c.JSON(http.StatusOK, map[string]string{"status": "success"})
	}
}

// VerifyWebhook godoc
// @Summary Webhook verification handshake
// @Description Echoes hub.challenge when mode and verify token match
// @Produce plain
// @Param hub.mode query string true "Mode"
// @Param hub.verify_token query string true "Verify token"
// @Param hub.challenge query string true "Challenge"
// @Success 200 "challenge value"
// @Failure 403 "token mismatch"
// @Router /whatsapp-webhook [get]
func GetVerifyWebhookFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		challenge, err := srv.VerifyWebhook(
			c.QueryParam("hub.mode"),
			c.QueryParam("hub.verify_token"),
			c.QueryParam("hub.challenge"),
		)
		if err != nil {
			return c.String(http.StatusForbidden, err.Error())
		}

		return c.String(http.StatusOK, challenge)
	}
}

// IncomingWebhook godoc
// @Summary Inbound message ingestion
// @Description Accepts the provider's webhook delivery and records text messages
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /whatsapp-webhook [post]
func GetIncomingWebhookFunc(srv service.Service) echo.HandlerFunc {
	return func(c echo.Context) error {
		payload := new(dto.WebhookPayload)
		if err := c.Bind(payload); err != nil {
			//the provider expects 200 regardless, a retry storm helps nobody
			log.Warn.Println("Unparseable webhook payload", err)
			return c.JSON(http.StatusOK, map[string]string{"status": "received"})
		}

		log.ErrIfErr("Error handling incoming message", srv.HandleIncomingMessage(*payload))

		return c.JSON(http.StatusOK, map[string]string{"status": "received"})
	}
}

//GetEventsWebsocketFunc streams every progress event to the connected peer
//as a {message, status} json envelope until the connection closes
func GetEventsWebsocketFunc(eventHub hub.Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			return err
		}

		ch := eventHub.Attach()
		defer func() {
			eventHub.Detach(ch)
			ws.Close()
		}()

		//the peer sends nothing meaningful, reads only detect the close
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := ws.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case <-done:
				return nil
			case val, ok := <-ch:
				if !ok {
					return nil
				}
				event := val.(dto.ProgressEvent)
				if err := ws.WriteJSON(event); err != nil {
					log.Trace.Println("Dropping observer", err)
					return nil
				}
			}
		}
	}
}

func parseId(param string) (uint32, error) {
	id64, err := strconv.ParseUint(param, 10, 32)
	return uint32(id64), err
}

func templateErrResponse(c echo.Context, err error) error {
	if err.Error() == "not found" {
		return c.String(http.StatusNotFound, "Template not found")
	}

	switch err.(type) {
	case *service.InvalidPayloadErr:
		return c.String(http.StatusBadRequest, err.Error())
	default:
		log.Error.Println(err)
		return c.String(http.StatusInternalServerError, "System malfunction. Please, try later")
	}
}
