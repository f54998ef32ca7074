package event

import (
	"fmt"
	messagebus "github.com/vardius/message-bus"
	"vincit.fi/raw-viewer/api"
	"vincit.fi/raw-viewer/api/apitype"
	"vincit.fi/raw-viewer/common/logger"
)

type Broker struct {
	bus messagebus.MessageBus

	api.Sender
}

func InitBus(queueSize int) *Broker {
	return &Broker{
		bus: messagebus.New(queueSize),
	}
}

// InitDevNullBus returns a broker that drops everything. Used where a
// component requires a sender but no one listens.
func InitDevNullBus() *Broker {
	return &Broker{
		bus: nil,
	}
}

func (s *Broker) Subscribe(topic api.Topic, fn interface{}) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Subscribe(string(topic), fn); err != nil {
		logger.Error.Panic("Could not subscribe")
	}
}

func (s *Broker) SendToTopic(topic api.Topic) {
	if s.bus == nil {
		return
	}
	logger.Trace.Printf("Sending to '%s'", topic)
	s.bus.Publish(string(topic))
}

func (s *Broker) SendCommandToTopic(topic api.Topic, command apitype.Command) {
	if s.bus == nil {
		return
	}
	logger.Trace.Printf("Sending command to '%s'", topic)
	s.bus.Publish(string(topic), command)
}

func (s *Broker) SendError(message string, err error) {
	formattedMessage := message
	if err != nil {
		formattedMessage = fmt.Sprintf("%s\n%s", message, err.Error())
	}
	logger.Error.Printf("Error: %s", formattedMessage)
	s.SendCommandToTopic(api.ShowError, &api.ErrorCommand{Message: message})
}
