package sqldb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"Club_Portal/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicate     = errors.New("record already exists")
	ErrRosterFull    = errors.New("roster is full")
	ErrStateConflict = errors.New("record is not in the expected state")
)

// Open 按驱动名连接数据库（Supabase 走 postgres）
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "mysql":
		dialector = mysql.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// AutoMigrate 自动建表
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Member{},
		&model.Project{},
		&model.Event{},
		&model.FinanceRequest{},
		&model.Bounty{},
		&model.CodeRepository{},
		&model.Resource{},
		&model.ClubOutbox{},
	)
}

// Page 统一分页参数修正
func Page(page, size int) (offset, limit int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	return (page - 1) * size, size
}

// translate 把 gorm 错误收敛到本包的哨兵错误
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}

// insertOutbox 在事务内写 outbox 事件
func insertOutbox(tx *gorm.DB, event, aggregateID, actorID string, data any) error {
	payload, err := json.Marshal(map[string]any{
		"event":      event,
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"actor":      actorID,
		"data":       data,
	})
	if err != nil {
		return err
	}
	return tx.Create(&model.ClubOutbox{
		EventType:   event,
		AggregateID: aggregateID,
		ActorID:     actorID,
		Payload:     string(payload),
		Status:      model.OutboxPending,
	}).Error
}
