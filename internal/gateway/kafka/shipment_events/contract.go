package shipment_events

import "github.com/IBM/sarama"

//go:generate mockgen -source=contract.go -destination=contract_mocks_test.go -package=shipment_events_test

type syncProducer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}
