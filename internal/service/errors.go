package service

import "errors"

var (
	// ErrNoCapacityAvailable - ни одна станция не имеет свободной машины.
	// Восстанавливается локально: отчет остается в статусе pending.
	ErrNoCapacityAvailable = errors.New("no ambulance station with available capacity")

	// ErrConcurrentReservationLost - гонка проиграна между выбором станции
	// и захватом ресурса, резерв станции откатывается
	ErrConcurrentReservationLost = errors.New("concurrent reservation lost")

	// ErrInvalidTransition - действие над диспетчеризацией в неподходящем состоянии
	ErrInvalidTransition = errors.New("invalid dispatch transition")

	// ErrEntityNotFound - сущность не найдена по идентификатору
	ErrEntityNotFound = errors.New("entity not found")
)
