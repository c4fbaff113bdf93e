package seeders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"supermaids/internal/entities"
	"supermaids/internal/repositories"
	"supermaids/internal/testutil"
	"supermaids/pkg/database"
	apperrors "supermaids/pkg/errors"
	"supermaids/pkg/validation"
)

func newSeeder(t *testing.T) (*Seeder, *database.Store) {
	t.Helper()
	store := testutil.NewStore(t)
	return NewSeeder(store.DB, repositories.New(store), validation.New(), zap.NewNop()), store
}

func assertSeedCounts(t *testing.T, store *database.Store) {
	t.Helper()
	want := map[string]int{
		entities.TableClient:               6,
		entities.TableEmployee:             6,
		entities.TableServiceRequirement:   6,
		entities.TableEquipment:            6,
		entities.TableAssignment:           7,
		entities.TableRequirementEquipment: 7,
	}
	for table, n := range want {
		assert.Equal(t, n, testutil.Count(t, store, table), table)
	}
}

func TestSeed_Counts(t *testing.T) {
	seeder, store := newSeeder(t)

	require.NoError(t, seeder.Seed(context.Background(), DefaultDataset()))
	assertSeedCounts(t, store)
}

func TestSeed_ReseedReplacesRows(t *testing.T) {
	ctx := context.Background()
	seeder, store := newSeeder(t)

	require.NoError(t, seeder.Seed(ctx, DefaultDataset()))

	// лишняя строка от прошлого запуска должна исчезнуть
	_, err := store.DB.Exec(`INSERT INTO Client VALUES (1007, 'Lisa', 'Garcia', '888 Sunset Blvd', 'Boston', '02110', '6175551007')`)
	require.NoError(t, err)
	_, err = store.DB.Exec(`INSERT INTO Service_Requirement VALUES (2007, 1007, '2024-12-14', '13:00', 90, 'Initial consultation')`)
	require.NoError(t, err)

	require.NoError(t, seeder.Seed(ctx, DefaultDataset()))
	assertSeedCounts(t, store)
}

func TestSeed_DanglingReferenceRollsBack(t *testing.T) {
	ctx := context.Background()
	seeder, store := newSeeder(t)
	require.NoError(t, seeder.Seed(ctx, DefaultDataset()))

	broken := DefaultDataset()
	broken.Clients = broken.Clients[:5] // клиента 1006 нет
	broken.Requirements = append(broken.Requirements, entities.ServiceRequirement{
		RequirementID: 2099, ClientNumber: 9999, StartDate: "2024-12-20", StartTime: "10:00", Duration: 30,
	})

	err := seeder.Seed(ctx, broken)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConstraintViolation)

	var ce *apperrors.ConstraintError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, apperrors.ConstraintForeignKey, ce.Kind)

	// удаление тоже откатилось: прежние данные на месте, включая клиента 1006
	assertSeedCounts(t, store)
	client, err := repositories.NewClientRepository(store).FindByNumber(ctx, nil, 1006)
	require.NoError(t, err)
	assert.Equal(t, "Emily", client.FirstName)
}

func TestSeed_InvalidRecordRejectedBeforeStore(t *testing.T) {
	ctx := context.Background()
	seeder, store := newSeeder(t)

	bad := DefaultDataset()
	bad.Employees[2].Salary = 0

	err := seeder.Seed(ctx, bad)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Zero(t, testutil.Count(t, store, entities.TableEmployee))
}

func TestDefaultDataset_IsCopy(t *testing.T) {
	first := DefaultDataset()
	first.Clients[0].FirstName = "Changed"

	assert.Equal(t, "John", DefaultDataset().Clients[0].FirstName)
}
