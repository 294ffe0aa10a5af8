package service

import (
	"context"

	"github.com/dilshat/campaign-sender/model"
	"github.com/dilshat/campaign-sender/service/dto"
	"github.com/dilshat/campaign-sender/util"
	"github.com/dilshat/campaign-sender/wa"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

//runCampaign processes the recipient list strictly in order. Per-recipient
//failures are converted into progress events, nothing stops the run.
func (s *service) runCampaign(campaign dto.CampaignRequest, templateBody string) {
	//one token per send interval, skipped rows consume none
	limiter := rate.NewLimiter(rate.Every(s.sendInterval), 1)

	s.hub.Publish(dto.ProgressEvent{
		Message: "--- Starting Campaign '" + campaign.TemplateName + "' ---",
		Status:  dto.INFO,
	})

	for _, recipient := range campaign.Recipients {
		to := recipient.CountryCode + recipient.Phone
		if util.IsBlank(to) || util.IsBlank(recipient.Name) {
			s.hub.Publish(dto.ProgressEvent{
				Message: "Skipping row due to missing name or phone.",
				Status:  dto.WARNING,
			})
			continue
		}

		attrs := recipientAttrs(recipient)

		components, text, err := wa.Render(templateBody, attrs, campaign.ImageUrl)
		if err != nil {
			zap.L().Warn("Render failed, storing fallback text",
				zap.String("template", campaign.TemplateName), zap.Error(err))
			text = "(Sent Campaign: '" + campaign.TemplateName + "') - render failed"
		}
		if util.IsBlank(text) {
			//dangling template name or empty body, store the default commentary
			text = "(Sent Campaign: '" + campaign.TemplateName + "')"
		}

		if campaign.ButtonParam != "" {
			if val, ok := attrs[campaign.ButtonParam]; ok {
				components = append(components, wa.NewURLButton(0, val))
			}
		}

		//pace outbound calls against the provider rate limit
		_ = limiter.Wait(context.Background())

		err = s.gateway.SendTemplate(to, campaign.TemplateName, components)
		if err != nil {
			s.hub.Publish(dto.ProgressEvent{
				Message: "Failed to send to " + recipient.Name + ". Error: " + err.Error(),
				Status:  dto.ERROR,
			})
			continue
		}

		//a recording failure must not abort the batch
		if _, err := s.messageDao.Create(to, text, model.OUTGOING); err != nil {
			zap.L().Error("Error saving campaign message", zap.String("sender", to), zap.Error(err))
		}

		s.hub.Publish(dto.ProgressEvent{
			Message: "Sent '" + campaign.TemplateName + "' to " + recipient.Name,
			Status:  dto.SUCCESS,
		})
	}

	s.hub.Publish(dto.ProgressEvent{
		Message: "--- Campaign Finished ---",
		Status:  dto.INFO,
	})
}

//recipientAttrs exposes the recipient name to placeholders along with the open-ended attrs
func recipientAttrs(recipient dto.Recipient) map[string]string {
	attrs := make(map[string]string, len(recipient.Attrs)+1)
	for key, val := range recipient.Attrs {
		attrs[key] = val
	}
	if _, ok := attrs["name"]; !ok {
		attrs["name"] = recipient.Name
	}
	return attrs
}
