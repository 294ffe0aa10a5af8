package dto

const (
	//progress event statuses
	INFO    string = "info"
	SUCCESS        = "success"
	WARNING        = "warning"
	ERROR          = "error"
)

//ProgressEvent is a transient campaign status notification, broadcast only, never persisted
type ProgressEvent struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

//Recipient is one row of a campaign recipient list.
//Attrs is open-ended: any key may be referenced by a {key} placeholder of the
//campaign template (order_status, tracking_id, product_name, offer_code, ...).
type Recipient struct {
	Phone       string            `json:"phone"`
	Name        string            `json:"name"`
	CountryCode string            `json:"country_code"`
	Attrs       map[string]string `json:"attrs"`
}

type CampaignRequest struct {
	TemplateName string      `json:"template_name" validate:"required"`
	ImageUrl     string      `json:"image_url"`
	ButtonParam  string      `json:"button_param"`
	Recipients   []Recipient `json:"recipients" validate:"required,min=1"`
}

type CampaignAck struct {
	RunId  string `json:"run_id"`
	Status string `json:"status"`
}

type Message struct {
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
	Direction string `json:"direction"`
}

type Reply struct {
	Message string `json:"message" validate:"required"`
}

type Template struct {
	Id   uint32 `json:"id"`
	Name string `json:"template_name"`
	Body string `json:"template_body"`
}

type TemplateCreate struct {
	Name string `json:"template_name" validate:"required"`
	Body string `json:"template_body" validate:"required"`
}

//WebhookPayload is the provider's nested inbound delivery envelope
type WebhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Messages []struct {
					From string `json:"from"`
					Type string `json:"type"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}
