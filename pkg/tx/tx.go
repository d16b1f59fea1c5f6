package tx

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
)

// Manager оборачивает trm-менеджер и фиксирует уровень изоляции.
type Manager struct {
	trm *manager.Manager
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{trm: manager.Must(pgxv5.NewDefaultFactory(db))}
}

// Do выполняет fn в транзакции уровня Read Committed. Все записи внутри
// транзакций сервиса — одиночные guarded-апдейты (WHERE available = TRUE
// и подобные), поэтому Read Committed достаточен: проигравший гонку апдейт
// после коммита победителя перечитывает предикат и возвращает ноль строк
// вместо аборта всей транзакции с ошибкой сериализации. На этом перечтении
// держится переход к следующему кандидату при резервировании ресторана.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.doWithIsoLevel(ctx, pgx.ReadCommitted, fn)
}

func (m *Manager) doWithIsoLevel(
	ctx context.Context,
	level pgx.TxIsoLevel,
	fn func(ctx context.Context) error,
) error {
	s := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.trm.DoWithSettings(ctx, s, fn)
}
