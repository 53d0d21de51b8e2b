package domain

// Статические справочники магазина. Держим их данными, а не ветвлением,
// чтобы расширять без изменения кода.

// DefaultServerVersion версия по умолчанию, на её артефакт падаем
// при неизвестной версии
const DefaultServerVersion = "1.20.1"

// versionDownloads версия -> ссылка на серверный jar (Paper)
var versionDownloads = map[string]string{
	"1.20.1": "https://api.papermc.io/v2/projects/paper/versions/1.20.1/builds/196/downloads/paper-1.20.1-196.jar",
	"1.19.4": "https://api.papermc.io/v2/projects/paper/versions/1.19.4/builds/550/downloads/paper-1.19.4-550.jar",
	"1.18.2": "https://api.papermc.io/v2/projects/paper/versions/1.18.2/builds/388/downloads/paper-1.18.2-388.jar",
	"1.16.5": "https://api.papermc.io/v2/projects/paper/versions/1.16.5/builds/794/downloads/paper-1.16.5-794.jar",
	"1.12.2": "https://api.papermc.io/v2/projects/paper/versions/1.12.2/builds/1620/downloads/paper-1.12.2-1620.jar",
}

// DownloadURLForVersion возвращает ссылку на скачивание сервера для версии.
// Неизвестная версия хранится как есть, но артефакт отдаём дефолтный.
func DownloadURLForVersion(version string) string {
	if url, ok := versionDownloads[version]; ok {
		return url
	}
	return versionDownloads[DefaultServerVersion]
}

// DefaultPlugins фиксированный набор плагинов, отдаётся в каждом ответе
var DefaultPlugins = []string{"EssentialsX", "WorldEdit", "CoreProtect", "Vault", "LuckPerms"}

// tierNames ID доната -> отображаемое название
var tierNames = map[string]string{
	"king":    "Король 👑",
	"demon":   "Демон 🔥",
	"emerald": "Изумруд 💎",
	"devil":   "Дьявол 💀",
}

// TierDisplayName возвращает отображаемое название донат-пакета.
// Неизвестный tier_id проходит насквозь без изменений.
func TierDisplayName(tierID string) string {
	if name, ok := tierNames[tierID]; ok {
		return name
	}
	return tierID
}
