package texts

import "fmt"

// Welcome приветствие на /start без параметров заказа
const Welcome = `👋 Добро пожаловать в магазин EmeraldWorld!

Для покупки доната:
1. Перейдите на сайт emeraldworld.ru
2. Выберите донат-пакет
3. Нажмите "Купить" и вернитесь сюда

💳 Оплата принимается по карте Сбербанка
⚡️ Выдача в течение 5 минут`

// MalformedOrder ошибка разбора deep-link payload
const MalformedOrder = `❌ Ошибка в данных заказа. Попробуйте снова с сайта.`

// ReceiptAccepted подтверждение получения скриншота чека
const ReceiptAccepted = `✅ Чек получен! Ожидайте проверки администратора.`

const paymentInstruction = `🎮 <b>Заказ на EmeraldWorld</b>

👤 Игрок: <code>%s</code>
💎 Донат: %s
💰 Сумма: %s ₽

<b>Инструкция по оплате:</b>

1️⃣ Переведите %s ₽ на карту Сбербанка:
<code>2202 2062 4188 3953</code>

2️⃣ В комментарии к переводу укажите:
<code>%s</code>

⏱ Донат будет выдан в течение 5 минут после проверки оплаты

❓ Вопросы? Напишите @admin`

// FormatPaymentInstruction инструкция по оплате для покупателя
func FormatPaymentInstruction(nickname, tierName, price string) string {
	return fmt.Sprintf(paymentInstruction, nickname, tierName, price, price, nickname)
}

const adminOrder = `🔔 <b>Новый заказ!</b>

👤 Игрок: %s
💎 Донат: %s
💰 Сумма: %s ₽

Ожидаем оплату от пользователя`

// FormatAdminOrder уведомление оператору о новом заказе
func FormatAdminOrder(nickname, tierName, price string) string {
	return fmt.Sprintf(adminOrder, nickname, tierName, price)
}

// FormatReceiptCaption подпись к пересланному оператору чеку
func FormatReceiptCaption(username, firstName string) string {
	return fmt.Sprintf("📸 Чек от @%s (%s)", username, firstName)
}
