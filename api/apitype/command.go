package apitype

// Command is the marker for payloads sent through the event broker.
type Command interface{}
