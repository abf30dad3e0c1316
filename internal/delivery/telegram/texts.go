package telegram

// Tugma va komanda qiymatlari. Router aynan shu qiymatlar bo'yicha ishlaydi.
const (
	cmdStart  = "/start"
	cmdCancel = "/cancel"

	btnCatalog        = "Каталог"
	btnAbout          = "О нас"
	btnCallSpecialist = "Позвать специалиста"
	btnOrder          = "Заказать"
	btnBack           = "Назад"
	btnBackToModels   = "Назад к моделям"

	btnAdminPanel      = "Админ‑панель"
	btnStats           = "Статистика"
	btnBroadcast       = "Рассылка"
	btnUsers           = "Список пользователей"
	btnExportOrders    = "Выгрузить заказы"
	btnExitAdmin       = "Выйти из админки"
	btnCancelBroadcast = "Отмена рассылки"
	btnAuditLog        = "Журнал действий"
)

const (
	textWelcome      = "Привет, %s! Добро пожаловать в официальный магазин TXED!\n\nВыберите нужный раздел:"
	textMainMenu     = "Главное меню:"
	textChooseModel  = "Выберите модель велосипеда:"
	textUseMenu      = "Пожалуйста, используйте кнопки меню для навигации."
	textGenericError = "Произошла ошибка. Попробуйте позже."

	textSpecialistNotified = "Специалист уведомлен! С Вами свяжутся в ближайшее время."
	textSpecialistFailed   = "Произошла ошибка при отправке уведомления. Попробуйте позже."

	textChooseFrame      = "Выберите размер рамы:"
	textAskName          = "Отлично! Теперь введите ваши данные для оформления заказа.\n\nВведите ваше ФИО:"
	textAskPhone         = "Введите ваш номер телефона:"
	textAskEmail         = "Введите ваш email:"
	textOrderDone        = "Спасибо за заказ! Наш специалист свяжется с вами в ближайшее время для подтверждения."
	textOrderCancelled   = "Оформление заказа отменено."
	textOrderFailed      = "Не удалось сохранить заказ. Попробуйте отправить данные ещё раз."
	textSelectModelFirst = "Сначала выберите модель в каталоге."
	textBadFrame         = "Пожалуйста, выберите размер рамы с помощью кнопок ниже."
	textNameTooShort     = "Слишком короткое ФИО. Введите ваше ФИО:"
	textPhoneTooShort    = "Слишком короткий номер. Введите ваш номер телефона:"
	textEmptyInput       = "Пустое сообщение. Попробуйте ещё раз."
	textCommandInFlow    = "Во время оформления заказа команды недоступны. Для отмены нажмите «Назад»."

	textNoAccess         = "У вас нет доступа"
	textNoAdminAccess    = "У вас нет доступа к админ‑панели"
	textAdminPanel       = "Панель администратора:"
	textAskBroadcast     = "Введите сообщение для рассылки:"
	textBroadcastStarted = "Начинаю рассылку..."
	textBroadcastDone    = "Рассылка завершена!\nУспешно: %d\nНе удалось: %d"
	textOrdersExported   = "Заказов в файле: %d"
	textNoOrders         = "Заказов пока нет"
	textCatalogUploaded  = "Каталог обновлён!\nМоделей: %d\nФайл: %s"
	textCatalogBadFile   = "Принимаются только файлы Excel (.xlsx) размером до 5 МБ."
	textCatalogLoading   = "Файл загружается и обрабатывается..."
	textCatalogFailed    = "Не удалось обновить каталог: %v"
	textFilesAdminOnly   = "Файлы может загружать только администратор."
)

const textAbout = `О нас | Официальный импортер TXED в России
Компания "СИБВЕЛО" рада представить себя как официального импортера бренда TXED в России. Мы гордимся тем, что предлагаем российским потребителям качественную продукцию с 40‑летней историей.
Почему мы выбрали TXED?
После тщательного анализа рынка мы остановились на бренде TXED благодаря его безупречной репутации в 50+ странах мира. Современное производство с европейскими стандартами качества.
Наш путь с брендом:
• 2023 — начало переговоров о сотрудничестве
• 2024 — официальный старт продаж в России
• Сегодня — активное развитие дилерской сети
Что мы предлагаем:
• Качественные велосипеды и E‑bike по доступным ценам
• Полную техническую поддержку
• Гарантийное обслуживание на территории РФ
• Постоянное наличие запчастей на складах
Наши преимущества:
Прямые поставки с завода позволяют нам поддерживать конкурентные цены и обеспечивать стабильное наличие товара.
Наша миссия:
Сделать современные велосипеды и E‑bike доступными для широкого круга российских потребителей.
Сайт: https://txedbikes.ru
Напишите нам — ответим на все вопросы!
С уважением,
Команда "СИБВЕЛО"
Официальный импортер TXED в России`
