package mail

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	gomail "gopkg.in/gomail.v2"

	"bookline/internal/domain"
)

// Sender delivers reminder emails over SMTP.
type Sender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSender(host string, port int, username, password, from string) *Sender {
	return &Sender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// SendReminder emails the customer about an upcoming reservation. The body
// carries the service name, the local start time and the store's contact
// details. Delivery either succeeds or returns an error; the caller owns
// retry policy.
func (s *Sender) SendReminder(ctx context.Context, res domain.Reservation, store domain.Store) error {
	if res.CustomerEmail == "" {
		return fmt.Errorf("reservation %s has no customer email", res.ID)
	}

	start := res.StartTime.Local()

	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder of your upcoming appointment.\n\n"+
			"Service: %s\nWhen: %s\nWhere: %s, %s\nPhone: %s\n\nSee you soon,\n%s\n",
		res.CustomerName,
		res.ServiceName,
		start.Format("Monday, 2 January 2006 at 15:04"),
		store.Name, store.Address,
		store.Phone,
		store.Name,
	)

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", res.CustomerEmail)
	m.SetHeader("Subject", fmt.Sprintf("Reminder: %s at %s", res.ServiceName, store.Name))
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"reservation_id": res.ID,
			"store_id":       store.ID,
		}).Error("failed to send reminder email")
		return fmt.Errorf("send reminder: %w", err)
	}

	return nil
}
