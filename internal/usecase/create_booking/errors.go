package create_booking

import "errors"

var (
	// ErrSalonNotFound возвращается, когда салон не найден
	ErrSalonNotFound = errors.New("salon not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или скрыта
	ErrServiceNotFound = errors.New("service not found")

	// ErrServiceNotInSalon возвращается, когда услуга принадлежит другому салону
	ErrServiceNotInSalon = errors.New("service does not belong to this salon")

	// ErrSlotTaken возвращается, когда слот заняла конкурентная запись
	ErrSlotTaken = errors.New("slot is already taken")

	// ErrInvalidDate возвращается при дате или времени начала в прошлом
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
