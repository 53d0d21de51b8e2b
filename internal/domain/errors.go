package domain

import "fmt"

// ValidationError некорректный ввод от клиента, маппится в 4xx
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// ConfigurationError отсутствует обязательный секрет/строка подключения.
// Ошибка деплоя, проявляется на запросе, а не на старте процесса.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return e.Msg
}

func NewConfigurationError(msg string) error {
	return &ConfigurationError{Msg: msg}
}

// StorageUnavailableError хранилище недоступно или запрос к нему не прошёл
type StorageUnavailableError struct {
	Err error
}

func (e *StorageUnavailableError) Error() string {
	return fmt.Sprintf("storage unavailable: %v", e.Err)
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

func WrapStorageError(err error) error {
	if err == nil {
		return nil
	}
	return &StorageUnavailableError{Err: err}
}

// GatewayHTTPError платёжный шлюз отклонил запрос.
// Статус и тело шлюза пробрасываются клиенту как есть для диагностики.
type GatewayHTTPError struct {
	StatusCode int
	Body       string
}

func (e *GatewayHTTPError) Error() string {
	return fmt.Sprintf("payment gateway returned %d: %s", e.StatusCode, e.Body)
}

// GatewayLogicError шлюз ответил успешно, но ответ непригоден
// (например, нет confirmation_url)
type GatewayLogicError struct {
	Body string
}

func (e *GatewayLogicError) Error() string {
	return fmt.Sprintf("payment gateway returned unusable response: %s", e.Body)
}

// MessagingAPIError Telegram API отклонил отправку
type MessagingAPIError struct {
	Code        int
	Description string
}

func (e *MessagingAPIError) Error() string {
	return fmt.Sprintf("messaging API error: %s (code: %d)", e.Description, e.Code)
}

// TransportError сетевая ошибка при обращении к внешнему API
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func WrapTransportError(err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{Err: err}
}
