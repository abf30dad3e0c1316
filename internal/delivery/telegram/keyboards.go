package telegram

import "github.com/yourusername/txed-bike-bot/internal/domain/entity"

// catalogRowSize katalog klaviaturasidagi qatordagi tugmalar soni
const catalogRowSize = 3

func mainMenuKeyboard(isAdmin bool) *entity.Keyboard {
	kb := entity.NewKeyboard(
		[]string{btnCatalog, btnAbout},
		[]string{btnCallSpecialist},
	)
	if isAdmin {
		kb.Rows = append(kb.Rows, []string{btnAdminPanel})
	}
	return kb
}

// catalogKeyboard modellar 3 tadan, oxirgi qatorda "Назад"
func catalogKeyboard(codes []string) *entity.Keyboard {
	buttons := append(append([]string(nil), codes...), btnBack)

	kb := entity.NewKeyboard()
	for len(buttons) > 0 {
		n := catalogRowSize
		if len(buttons) < n {
			n = len(buttons)
		}
		kb.Rows = append(kb.Rows, buttons[:n])
		buttons = buttons[n:]
	}
	return kb
}

func bikeKeyboard() *entity.Keyboard {
	return entity.NewKeyboard([]string{btnOrder, btnBackToModels})
}

func frameKeyboard(sizes []string) *entity.Keyboard {
	kb := entity.NewKeyboard()
	for _, size := range sizes {
		kb.Rows = append(kb.Rows, []string{size})
	}
	kb.Rows = append(kb.Rows, []string{btnBack})
	return kb
}

func backKeyboard() *entity.Keyboard {
	return entity.NewKeyboard([]string{btnBack})
}

func adminKeyboard() *entity.Keyboard {
	return entity.NewKeyboard(
		[]string{btnStats, btnBroadcast},
		[]string{btnUsers, btnExportOrders},
		[]string{btnAuditLog, btnExitAdmin},
	)
}

func broadcastKeyboard() *entity.Keyboard {
	return entity.NewKeyboard([]string{btnCancelBroadcast})
}
