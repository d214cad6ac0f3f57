package main

import (
	"context"

	"Haven_Community/internal/config"
	"Haven_Community/internal/model"
	"Haven_Community/internal/pkg"
	"Haven_Community/internal/repository/mysql"
	"Haven_Community/internal/repository/redis"
	"Haven_Community/internal/router"
	"Haven_Community/internal/service"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	pkg.AccessSecret = []byte(cfg.AccessSecret)
	pkg.RefreshSecret = []byte(cfg.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		panic(err)
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		panic(err)
	}
	defer redis.Close()

	// 自动建表（开发阶段 OK）
	mysql.DB.AutoMigrate(
		&model.Account{},
		&model.Community{},
		&model.Membership{},
		&model.Post{},
		&model.Comment{},
		&model.Reaction{},
		&model.PremiumUnlock{},
		&model.CommunityOutbox{},
	)

	// 媒体存储没配bucket就不启用，上传接口会报错但其他功能照常
	var media service.MediaStore
	if cfg.S3Bucket != "" {
		store, err := pkg.NewMediaStore(context.Background(), pkg.MediaConfig{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			UsePathStyle:  cfg.S3UsePathStyle,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			panic(err)
		}
		media = store
	}

	// outbox投递：有kafka走kafka，没有就打日志
	sender := service.Sender(service.LogSender)
	if len(cfg.KafkaBrokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaTopic,
		})
		if err != nil {
			panic(err)
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(mysql.DB, sender).Run(ctx)

	emailCfg := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	r := router.InitRouter(mysql.DB, media, emailCfg)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
