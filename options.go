package grammarquiz

import (
	"github.com/nsip/grammar-quiz/internal/util"
	"github.com/pkg/errors"
)

type Option func(*QuizService) error

//
// apply all supplied options to the service
// returns any error encountered while applying the options
//
func (srvc *QuizService) setOptions(options ...Option) error {
	for _, opt := range options {
		if err := opt(srvc); err != nil {
			return err
		}
	}
	return nil
}

//
// name of this service instance,
// leave blank to auto-generate one
//
func Name(name string) Option {
	return func(s *QuizService) error {
		if name != "" {
			s.serviceName = name
			return nil
		}
		s.serviceName = util.GenerateName()
		return nil
	}
}

//
// unique id of this service instance,
// leave blank to auto-generate one
//
func ID(id string) Option {
	return func(s *QuizService) error {
		if id != "" {
			s.serviceID = id
			return nil
		}
		s.serviceID = util.GenerateID()
		return nil
	}
}

//
// host name/address this service runs on
//
func Host(hostName string) Option {
	return func(s *QuizService) error {
		if hostName != "" {
			s.serviceHost = hostName
			return nil
		}
		return errors.New("Host() option: must supply a host name or address")
	}
}

//
// port this service listens on, 0 picks
// an available port
//
func Port(port int) Option {
	return func(s *QuizService) error {
		if port < 0 {
			return errors.Errorf("Port() option: invalid port %d", port)
		}
		if port != 0 {
			s.servicePort = port
			return nil
		}
		p, err := util.AvailablePort()
		if err != nil {
			return errors.Wrap(err, "Port() option: unable to find free port")
		}
		s.servicePort = p
		return nil
	}
}

//
// telegram bot token used to deliver result summaries.
// delivery is disabled unless both token and chat id are set.
//
func NotifyBotToken(token string) Option {
	return func(s *QuizService) error {
		s.notifyBotToken = token
		return nil
	}
}

//
// telegram chat (numeric id or @channel) that receives
// result summaries
//
func NotifyChatID(chatID string) Option {
	return func(s *QuizService) error {
		s.notifyChatID = chatID
		return nil
	}
}

//
// printf template for the bot api, with slots for
// the token and the method name. blank uses the
// public telegram api.
//
func NotifyAPIEndpoint(endpoint string) Option {
	return func(s *QuizService) error {
		s.notifyEndpoint = endpoint
		return nil
	}
}

//
// replace the notification sink, mainly for testing.
// takes precedence over the telegram settings.
//
func WithNotifier(n Notifier) Option {
	return func(s *QuizService) error {
		if n == nil {
			return errors.New("WithNotifier() option: notifier cannot be nil")
		}
		s.notifier = n
		return nil
	}
}
