package domain

import (
	"strings"
	"time"
)

// ServerStatus статус Minecraft сервера
type ServerStatus string

const (
	ServerStatusCreated  ServerStatus = "created"
	ServerStatusStarting ServerStatus = "starting"
	ServerStatusRunning  ServerStatus = "running"
	ServerStatusStopped  ServerStatus = "stopped"
)

// ServerAction действие над сервером, присланное клиентом
type ServerAction string

const (
	ServerActionStart   ServerAction = "start"
	ServerActionStop    ServerAction = "stop"
	ServerActionRestart ServerAction = "restart"
)

// StatusForAction маппит действие в целевой статус.
// Неизвестное действие останавливает сервер.
func StatusForAction(action ServerAction) ServerStatus {
	switch action {
	case ServerActionStart, ServerActionRestart:
		return ServerStatusRunning
	case ServerActionStop:
		return ServerStatusStopped
	default:
		return ServerStatusStopped
	}
}

const (
	// AnonymousUserID владелец по умолчанию, когда клиент не прислал X-User-Id
	AnonymousUserID = "anonymous"

	// DefaultServerName имя сервера по умолчанию
	DefaultServerName = "My Server"

	// ServerIDLength длина server_id (строчные латинские буквы и цифры)
	ServerIDLength = 8

	// Диапазон портов для новых серверов
	ServerPortMin = 25565
	ServerPortMax = 30000

	// Статические поля отображения, живой телеметрии нет
	ServerMaxPlayers = 20

	// HostSuffix суффикс для player-facing адреса сервера
	HostSuffix = ".emeraldworld.host"
)

// ServerRecord запись о сервере игрока, единственная персистентная сущность
type ServerRecord struct {
	ServerID      string       `json:"serverId" db:"server_id"`
	UserID        string       `json:"-" db:"user_id"`
	ServerName    string       `json:"serverName" db:"server_name"`
	Version       string       `json:"version" db:"version"`
	Status        ServerStatus `json:"status" db:"status"`
	Subdomain     string       `json:"ip" db:"subdomain"`
	Port          int          `json:"port" db:"port"`
	MaxPlayers    int          `json:"maxPlayers" db:"max_players"`
	OnlinePlayers int          `json:"onlinePlayers" db:"online_players"`
	CreatedAt     time.Time    `json:"createdAt" db:"created_at"`
}

// DisplayAddress player-facing адрес для подключения к серверу
func (r *ServerRecord) DisplayAddress() string {
	return r.Subdomain + HostSuffix
}

// SanitizeSubdomain превращает IP/адрес в валидный фрагмент hostname:
// точки и двоеточия заменяются на дефисы
func SanitizeSubdomain(address string) string {
	address = strings.ReplaceAll(address, ".", "-")
	return strings.ReplaceAll(address, ":", "-")
}
