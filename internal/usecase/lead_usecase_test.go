package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yourusername/txed-bike-bot/internal/domain/entity"
)

func TestLeadUseCase_CallSpecialist(t *testing.T) {
	sender := &fakeSender{}
	uc := NewLeadUseCase(sender, testAdminID)

	err := uc.CallSpecialist(context.Background(), entity.User{ID: 42, FirstName: "Иван", LastName: "Петров"})
	require.NoError(t, err)
	require.Len(t, sender.texts, 1)
	require.Equal(t, testAdminID, sender.texts[0].ChatID)
	require.Equal(t, "Пользователь Иван Петров (ID: 42) хочет связаться с Вами", sender.texts[0].Text)

	sender.failTo = map[int64]bool{testAdminID: true}
	require.ErrorIs(t, uc.CallSpecialist(context.Background(), entity.User{ID: 1}), errSend)
}
