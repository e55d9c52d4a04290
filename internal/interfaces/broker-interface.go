package interfaces

// ProducerHandler publishes domain events to the message broker. A nil
// producer is tolerated everywhere so the storefront still works when the
// broker is not configured.
type ProducerHandler interface {
	PublishMessage(key, value []byte) error
}
