package store

import (
	"context"
	"testing"

	"github.com/goliatone/core.io-data-manager/core/model"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})
	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func mockModel(db *gorm.DB) *storeModel {
	return &storeModel{
		db:       db,
		identity: "people",
		table:    "people",
		schema: model.NewSchema().
			AddField("id", model.FieldDef{Type: model.FieldInteger, Unique: true}).
			AddField("email", model.FieldDef{Type: model.FieldText, Unique: true}).
			AddField("name", model.FieldDef{Type: model.FieldText}),
		logger: zap.NewNop(),
	}
}

func TestStoreModel_CreateInsertsRow(t *testing.T) {
	db, mock := setupMockDB(t)
	m := mockModel(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `people`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rec := model.NewRecord()
	rec.Set("id", "7")
	rec.Set("name", "Alice")

	persisted, err := m.Create(context.Background(), rec)
	require.NoError(t, err)
	id, _ := persisted.Get("id")
	assert.Equal(t, 7, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreModel_UpdateOrCreate_UpdatesMatchingRows(t *testing.T) {
	db, mock := setupMockDB(t)
	m := mockModel(db)

	criteria := model.AnyOf(
		model.Clause{Field: "id", Value: 7},
		model.Clause{Field: "email", Value: "alice@example.com"},
	)

	mock.ExpectQuery("SELECT \\* FROM `people` WHERE `id` = \\? OR `email` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name"}).
			AddRow(7, "alice@example.com", "Alice"))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `people` SET .+ WHERE `id` = \\? OR `email` = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rec := model.NewRecord()
	rec.Set("name", "Alice Cooper")

	persisted, err := m.UpdateOrCreate(context.Background(), criteria, rec)
	require.NoError(t, err)

	// Persisted row is the existing one with the update applied
	name, _ := persisted.Get("name")
	assert.Equal(t, "Alice Cooper", name)
	email, _ := persisted.Get("email")
	assert.Equal(t, "alice@example.com", email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreModel_UpdateOrCreate_InsertsWhenNothingMatches(t *testing.T) {
	db, mock := setupMockDB(t)
	m := mockModel(db)

	mock.ExpectQuery("SELECT \\* FROM `people` WHERE `id` = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `people`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rec := model.NewRecord()
	rec.Set("id", 7)
	rec.Set("name", "Alice")

	_, err := m.UpdateOrCreate(context.Background(), model.Where("id", 7), rec)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreModel_UpdateOrCreate_EmptyCriteriaCreates(t *testing.T) {
	db, mock := setupMockDB(t)
	m := mockModel(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `people`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rec := model.NewRecord()
	rec.Set("name", "Nobody")

	_, err := m.UpdateOrCreate(context.Background(), model.All(), rec)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreModel_DestroyAll(t *testing.T) {
	db, mock := setupMockDB(t)
	m := mockModel(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `people` WHERE 1 = 1").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := m.Destroy(context.Background(), model.All())
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreModel_DestroyWithCriteria(t *testing.T) {
	db, mock := setupMockDB(t)
	m := mockModel(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `people` WHERE `id` = \\?").
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := m.Destroy(context.Background(), model.Where("id", 7))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
