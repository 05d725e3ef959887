package repo

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// Backend — вид хранилища, выбранный по схеме DSN.
type Backend string

const (
	BackendMongo    Backend = "mongodb"
	BackendPostgres Backend = "postgres"
	BackendSQLite   Backend = "sqlite"

	defaultMongoDatabase = "itemkeeper"
)

// Store держит подключение к хранилищу и выданный поверх него репозиторий.
type Store struct {
	backend Backend
	items   ItemRepository
	ping    func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// Items возвращает репозиторий коллекции Item.
func (s *Store) Items() ItemRepository { return s.items }

// Backend возвращает вид хранилища.
func (s *Store) Backend() Backend { return s.backend }

// Ping проверяет связь с хранилищем.
func (s *Store) Ping(ctx context.Context) error { return s.ping(ctx) }

// Close закрывает подключение.
func (s *Store) Close(ctx context.Context) error { return s.close(ctx) }

// DetectBackend определяет хранилище по схеме DSN. Всё, что не похоже
// на MongoDB или PostgreSQL, считается путём к файлу SQLite.
func DetectBackend(dsn string) Backend {
	switch {
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return BackendMongo
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres
	default:
		return BackendSQLite
	}
}

// Open создаёт хранилище по DSN без обращения к серверу. Ошибка означает
// некорректную конфигурацию; доступность сервера проверяется через Ping.
func Open(ctx context.Context, dsn, collection string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("empty database dsn")
	}
	switch backend := DetectBackend(dsn); backend {
	case BackendMongo:
		return openMongo(ctx, dsn, collection)
	case BackendPostgres:
		return openGorm(backend, postgres.Open(dsn))
	default:
		return openGorm(backend, gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn})
	}
}

func openMongo(ctx context.Context, dsn, collection string) (*Store, error) {
	cs, err := connstring.ParseAndValidate(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mongodb dsn: %w", err)
	}
	dbName := cs.Database
	if dbName == "" {
		dbName = defaultMongoDatabase
	}
	if collection == "" {
		collection = "items"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	coll := client.Database(dbName).Collection(collection)

	return &Store{
		backend: BackendMongo,
		items:   NewMongoItemRepository(coll),
		ping: func(ctx context.Context) error {
			return client.Ping(ctx, nil)
		},
		close: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	}, nil
}

func openGorm(backend Backend, dial gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dial, &gorm.Config{
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", backend, err)
	}
	return NewGormStore(backend, db)
}

// NewGormStore оборачивает уже открытое gorm-подключение. Схема создаётся
// при первой операции с репозиторием, когда база доступна.
func NewGormStore(backend Backend, db *gorm.DB) (*Store, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%s: underlying sql.DB: %w", backend, err)
	}
	if backend == BackendSQLite {
		// SQLite не допускает параллельной записи, а :memory: живёт в одном соединении
		sqlDB.SetMaxOpenConns(1)
	}

	return &Store{
		backend: backend,
		items: &migratingRepo{
			next:    NewItemRepository(db),
			migrate: &schemaMigrator{db: db},
		},
		ping: func(ctx context.Context) error {
			return sqlDB.PingContext(ctx)
		},
		close: func(context.Context) error {
			return sqlDB.Close()
		},
	}, nil
}
