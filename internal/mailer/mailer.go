package mailer

import (
	"log"
	"sync"

	"gopkg.in/gomail.v2"
)

// Message is one transactional email waiting to be sent.
type Message struct {
	Subject string
	HTML    string
	To      string
}

// Service dispatches transactional email with a fixed pool of workers
// draining a buffered queue. Delivery is strictly best-effort: a send
// failure or a full queue is logged and dropped, never surfaced to the
// request that produced it.
type Service struct {
	dialer *gomail.Dialer
	from   string
	queue  chan Message
	wg     sync.WaitGroup
}

// New starts the send workers. from is used as the sender address.
func New(host string, port int, user, pass string, workers int) *Service {
	if workers <= 0 {
		workers = 2
	}

	s := &Service{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
		queue:  make(chan Message, workers*8),
	}

	s.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go s.worker()
	}
	return s
}

func (s *Service) worker() {
	defer s.wg.Done()
	for msg := range s.queue {
		s.send(msg)
	}
}

func (s *Service) send(msg Message) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("mailer: failed to send %q to %s: %v", msg.Subject, msg.To, err)
		return
	}
	log.Printf("mailer: sent %q to %s", msg.Subject, msg.To)
}

// Enqueue hands a message to the workers without blocking the caller. When
// the queue is full the message is dropped.
func (s *Service) Enqueue(subject, html, to string) {
	select {
	case s.queue <- Message{Subject: subject, HTML: html, To: to}:
	default:
		log.Printf("mailer: queue full, dropping %q to %s", subject, to)
	}
}

// Close stops accepting messages and waits for in-flight sends to finish.
func (s *Service) Close() {
	close(s.queue)
	s.wg.Wait()
}
