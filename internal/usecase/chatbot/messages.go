package chatbot

import (
	"fmt"

	"github.com/ngdp/geoportal/internal/domain"
)

// MessageSet holds the localized strings the chatbot renders directly into
// its HTML answers.
type MessageSet struct {
	// Intro opens an answer that carries result cards.
	Intro string

	// Fallback is the full answer when nothing matched; it offers the
	// portal's contact channel.
	Fallback string

	// InternalError is the generic apology shown when the search itself
	// failed. Raw errors never reach the chat widget.
	InternalError string
}

// Messages is the localization table keyed by language. Built once at
// startup and treated as immutable afterwards; adding a language means
// adding an entry here, not touching control flow.
type Messages map[domain.Language]MessageSet

// DefaultMessages builds the stock table with the configured contact
// channel substituted into the fallback texts.
func DefaultMessages(contactURL, contactPhone string) Messages {
	return Messages{
		domain.English: {
			Intro: "I found a few things that might help you:",
			Fallback: fmt.Sprintf(
				"Sorry, I couldn’t find an exact answer to that. You can contact our team at "+
					"<a href='%s' target='_blank'>Customer Support</a> or call %s.",
				contactURL, contactPhone,
			),
			InternalError: "Sorry, something went wrong while searching. Please try again later.",
		},
		domain.Arabic: {
			Intro: "وجدت بعض النتائج التي قد تساعدك:",
			Fallback: fmt.Sprintf(
				"عذرًا، لم أجد إجابة دقيقة على سؤالك. يمكنك التواصل مع "+
					"<a href='%s' target='_blank'>خدمة العملاء</a> أو الاتصال على %s.",
				contactURL, contactPhone,
			),
			InternalError: "عذرًا، حدث خطأ أثناء البحث. يرجى المحاولة لاحقًا.",
		},
	}
}
