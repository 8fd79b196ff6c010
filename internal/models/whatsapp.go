package models

const (
	// WhatsAppBusinessAccountObject is the webhook object type carrying messages.
	WhatsAppBusinessAccountObject = "whatsapp_business_account"
	MessageTypeText               = "text"
	MessagingProductWhatsApp      = "whatsapp"
	RecipientTypeIndividual       = "individual"
	MessageStatusRead             = "read"
)

// WebhookPayload is the body Meta posts to the webhook endpoint.
// Missing sections decode to empty slices and mean "nothing to process".
type WebhookPayload struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Metadata         *WebhookMetadata `json:"metadata,omitempty"`
	Contacts         []WebhookContact `json:"contacts"`
	Messages         []InboundMessage `json:"messages"`
}

type WebhookMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

type WebhookContact struct {
	WaID    string         `json:"wa_id"`
	Profile WebhookProfile `json:"profile"`
}

type WebhookProfile struct {
	Name string `json:"name"`
}

// InboundMessage is a single message entry inside a webhook change.
type InboundMessage struct {
	ID        string       `json:"id"`
	From      string       `json:"from"`
	Timestamp string       `json:"timestamp"`
	Type      string       `json:"type"`
	Text      *InboundText `json:"text,omitempty"`
}

type InboundText struct {
	Body string `json:"body"`
}

// TextBody returns the text body or an empty string for non-text messages.
func (m *InboundMessage) TextBody() string {
	if m.Text == nil {
		return ""
	}
	return m.Text.Body
}

// SenderName picks the profile name for from, falling back to the first contact.
func (v *WebhookValue) SenderName(from string) string {
	for _, c := range v.Contacts {
		if c.WaID == from && c.Profile.Name != "" {
			return c.Profile.Name
		}
	}
	if len(v.Contacts) > 0 {
		return v.Contacts[0].Profile.Name
	}
	return ""
}

// SendMessageRequest is the Graph API body for an outbound text message.
type SendMessageRequest struct {
	MessagingProduct string           `json:"messaging_product"`
	RecipientType    string           `json:"recipient_type"`
	To               string           `json:"to"`
	Type             string           `json:"type"`
	Text             OutboundTextBody `json:"text"`
}

type OutboundTextBody struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

// MarkReadRequest is the Graph API body for a read receipt.
type MarkReadRequest struct {
	MessagingProduct string `json:"messaging_product"`
	Status           string `json:"status"`
	MessageID        string `json:"message_id"`
}

type SendMessageResponse struct {
	MessagingProduct string `json:"messaging_product"`
	Contacts         []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// GraphErrorResponse is the error envelope returned by the Graph API.
type GraphErrorResponse struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		FBTraceID string `json:"fbtrace_id"`
	} `json:"error"`
}
