package flags

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"strings"

	"github.com/ohFRY/cratetools/notifications"
	"github.com/ohFRY/cratetools/rekordbox"
)

var _ flag.Value = (*notificationsParser)(nil)
var _ flag.Value = (*platformParser)(nil)

type notificationsParser struct{ *notifications.Notifications }

func (n *notificationsParser) Set(value string) error {
	eventsRaw, uri, ok := strings.Cut(value, " ")
	if !ok {
		return fmt.Errorf("invalid notification uri format. expected eg \"ev1,ev2 uri\"")
	}
	var lineErrs []error
	for _, ev := range strings.Split(eventsRaw, ",") {
		ev, uri = strings.TrimSpace(ev), strings.TrimSpace(uri)
		err := n.AddURI(notifications.Event(ev), uri)
		lineErrs = append(lineErrs, err)
	}
	return errors.Join(lineErrs...)
}

func (n notificationsParser) String() string {
	if n.Notifications == nil {
		return ""
	}
	var parts []string
	n.Notifications.IterMappings(func(e notifications.Event, uri string) {
		url, _ := url.Parse(uri)
		parts = append(parts, fmt.Sprintf("%s: %s://%s/...", e, url.Scheme, url.Host))
	})
	return strings.Join(parts, ", ")
}

type platformParser struct{ *rekordbox.Platform }

func (p *platformParser) Set(value string) error {
	parsed, err := rekordbox.ParsePlatform(value)
	if err != nil {
		return err
	}
	*p.Platform = parsed
	return nil
}

func (p platformParser) String() string {
	if p.Platform == nil {
		return ""
	}
	return p.Platform.String()
}
