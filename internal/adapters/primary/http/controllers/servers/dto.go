package servers

import (
	"time"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
)

// CreateServerRequest тело POST /servers, все поля опциональны
type CreateServerRequest struct {
	ServerName    string `json:"serverName"`
	ServerVersion string `json:"serverVersion"`
	ServerIP      string `json:"serverIp"`
}

// UpdateStatusRequest тело PUT /servers
type UpdateStatusRequest struct {
	ServerID string `json:"serverId"`
	Action   string `json:"action"`
}

// UpdateAddressRequest тело PATCH /servers
type UpdateAddressRequest struct {
	ServerID string `json:"serverId"`
	NewIP    string `json:"newIp"`
}

// ServerResponse запись о сервере в ответах API
type ServerResponse struct {
	ServerID      string    `json:"serverId"`
	ServerName    string    `json:"serverName"`
	Version       string    `json:"version"`
	Status        string    `json:"status"`
	IP            string    `json:"ip"`
	Port          int       `json:"port"`
	MaxPlayers    int       `json:"maxPlayers"`
	OnlinePlayers int       `json:"onlinePlayers"`
	CreatedAt     time.Time `json:"createdAt"`
	Plugins       []string  `json:"plugins"`
}

// CreateServerResponse запись плюс ссылка на артефакт сервера
type CreateServerResponse struct {
	ServerResponse
	DownloadURL string `json:"downloadUrl"`
	Message     string `json:"message"`
}

// ListServersResponse ответ GET /servers
type ListServersResponse struct {
	Servers []ServerResponse `json:"servers"`
}

// toServerResponse аннотирует запись производным адресом и набором плагинов
func toServerResponse(record *domain.ServerRecord) ServerResponse {
	return ServerResponse{
		ServerID:      record.ServerID,
		ServerName:    record.ServerName,
		Version:       record.Version,
		Status:        string(record.Status),
		IP:            record.DisplayAddress(),
		Port:          record.Port,
		MaxPlayers:    record.MaxPlayers,
		OnlinePlayers: record.OnlinePlayers,
		CreatedAt:     record.CreatedAt,
		Plugins:       domain.DefaultPlugins,
	}
}
