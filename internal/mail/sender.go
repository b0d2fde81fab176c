package mail

import (
	"context"
	"log"
)

// LogSender пишет код входа в лог вместо отправки письма. Боевая доставка
// идёт через внешний почтовый шлюз кампуса; этот отправитель — для локальной
// разработки и стендов без SMTP.
type LogSender struct{}

func (LogSender) SendLoginCode(_ context.Context, email, code string) error {
	log.Printf("mail: login code for %s: %s", email, code)
	return nil
}
