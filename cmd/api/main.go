package main

import (
	"context"

	"buddyboard/internal/config"
	"buddyboard/internal/model"
	"buddyboard/internal/pkg"
	"buddyboard/internal/repository/mysql"
	"buddyboard/internal/repository/redis"
	"buddyboard/internal/router"
	"buddyboard/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := pkg.NewLogger(cfg.Environment)
	defer logger.Sync()

	pkg.SetSecrets(cfg.JWTAccessSecret, cfg.JWTRefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		logger.Fatal("mysql init failed", zap.Error(err))
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		logger.Fatal("redis init failed", zap.Error(err))
	}
	defer redis.Close()

	// AutoMigrate is fine for this deployment size
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Student{},
		&model.Post{},
		&model.Message{},
		&model.Event{},
		&model.DailyLog{},
		&model.Setting{},
		&model.ModerationOverride{},
		&model.NotifyOutbox{},
	); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// outbox relayer: kafka when brokers are configured, log sink otherwise
	sender := service.LogSender(logger)
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			logger.Fatal("kafka init failed", zap.Error(err))
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	go service.NewOutboxRelayer(sender, logger).Run(ctx)

	smtp := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	settingsSvc := service.NewSettingsService()
	postSvc := service.NewPostService(settingsSvc, logger)
	go postSvc.RunScheduler(ctx)

	r := router.InitRouter(router.Deps{SMTP: smtp, Logger: logger})
	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
