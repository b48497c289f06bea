//go:generate mockgen -source=../reservation_repository.go -destination=./mock_reservation_repository.go -package=mocks
//go:generate mockgen -source=../cart_store.go             -destination=./mock_cart_store.go             -package=mocks
//go:generate mockgen -source=../store_directory.go        -destination=./mock_store_directory.go        -package=mocks
//go:generate mockgen -source=../status_publisher.go       -destination=./mock_status_publisher.go       -package=mocks
//go:generate mockgen -source=../validator.go              -destination=./mock_validator.go              -package=mocks
//go:generate mockgen -source=../logger.go                 -destination=./mock_logger.go                 -package=mocks
//go:generate mockgen -source=../message_consumer.go       -destination=./mock_message_consumer.go       -package=mocks
//go:generate mockgen -source=../cart_service.go           -destination=./mock_cart_service.go           -package=mocks
//go:generate mockgen -source=../reservation_service.go    -destination=./mock_reservation_service.go    -package=mocks

package mocks
