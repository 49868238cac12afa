package main

import (
	"artshow_crm/config"
	"artshow_crm/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

func InitRegistry() {
	// Khởi tạo registry và đăng ký các collections
	err := InitCollections(global.MongoDB_Session, global.MongoDB_ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")
}

// InitCollections khởi tạo và đăng ký các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName_CRM)

	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName_CRM, db); err != nil {
		logrus.Errorf("Failed to register database %s: %v", cfg.MongoDB_DBName_CRM, err)
		return err
	}

	colNames := []string{
		global.MongoDB_ColNames.Users,
		global.MongoDB_ColNames.Permissions,
		global.MongoDB_ColNames.Roles,
		global.MongoDB_ColNames.OrganisationUnits,
		global.MongoDB_ColNames.Customers,
		global.MongoDB_ColNames.Products,
		global.MongoDB_ColNames.Orders,
		global.MongoDB_ColNames.Invoices,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}
	}

	return nil
}
