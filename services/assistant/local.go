package assistant

import (
	"context"
	"strings"
	"time"
)

// localReply is one canned answer keyed on message keywords.
type localReply struct {
	keywords []string
	reply    string
}

var localReplies = []localReply{
	{
		keywords: []string{"preț", "pret", "cost", "tarif"},
		reply:    "Prețurile noastre depind de tipul serviciului și dimensiunea spațiului. Pentru curățenie la domiciliu tariful pornește de la 2.5 RON/m², iar detailing auto costă 150 RON. Folosiți calculatorul de preț din pagina de rezervare pentru o estimare exactă!",
	},
	{
		keywords: []string{"program", "orar", "ora", "deschis"},
		reply:    "Programul nostru: Luni - Vineri 08:00 - 18:00, Sâmbătă 08:00 - 14:00. Duminica suntem închiși. Ne puteți contacta la +40 755 322 752.",
	},
	{
		keywords: []string{"servicii", "serviciu", "oferiti", "oferiți"},
		reply:    "Oferim detailing auto premium, curățare covoare și tapițerie, igienizare și dezinfectare, curățare mobilier și servicii complete la domiciliu. Care dintre acestea vă interesează?",
	},
	{
		keywords: []string{"rezervare", "programare", "programa", "rezerva"},
		reply:    "Puteți face o rezervare direct din pagina de rezervare: alegeți serviciul, data și ora dorită, completați datele de contact și confirmați. Vă vom contacta în curând pentru confirmare!",
	},
}

const localFallbackReply = "Mulțumim pentru mesaj! Pentru detalii despre serviciile noastre de curățenie ne puteți contacta la +40 755 322 752 sau puteți face o rezervare direct din pagina de rezervare."

// LocalResponder matches keywords in the last user message against a small
// set of canned Romanian answers. Delay simulates typing and is zero in tests.
type LocalResponder struct {
	Delay time.Duration
}

func (l *LocalResponder) Reply(ctx context.Context, message string) (string, error) {
	if l.Delay > 0 {
		select {
		case <-time.After(l.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	lowered := strings.ToLower(message)
	for _, r := range localReplies {
		for _, kw := range r.keywords {
			if strings.Contains(lowered, kw) {
				return r.reply, nil
			}
		}
	}
	return localFallbackReply, nil
}
