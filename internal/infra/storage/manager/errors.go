package manager

import "errors"

var (
	// ErrManagerNotFound возвращается, когда менеджер не найден
	ErrManagerNotFound = errors.New("manager.repository: manager not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("manager.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("manager.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("manager.repository: failed to scan row")
)
