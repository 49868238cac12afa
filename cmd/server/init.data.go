package main

import (
	"context"

	adminsvc "artshow_crm/internal/api/admin/service"
	"artshow_crm/internal/global"
	"artshow_crm/internal/logger"
)

// InitDefaultData khởi tạo dữ liệu nền: danh mục quyền cố định và role Administrator.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	ctx := context.Background()

	permissionService, err := adminsvc.NewPermissionService()
	if err != nil {
		log.Fatalf("Failed to initialize permission service: %v", err)
	}
	roleService, err := adminsvc.NewRoleService()
	if err != nil {
		log.Fatalf("Failed to initialize role service: %v", err)
	}
	userService, err := adminsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	// 1. Danh mục quyền cố định. InitMode ghi đè toàn bộ danh mục,
	// bình thường chỉ seed khi collection còn trống.
	if global.MongoDB_ServerConfig.InitMode {
		log.Info("🔄 [INIT] Step 1: Resetting permission catalog (init mode)...")
		count, err := permissionService.ResetPermissions(ctx)
		if err != nil {
			log.Fatalf("Failed to reset permission catalog: %v", err)
		}
		log.Infof("✅ [INIT] Step 1: Permission catalog reset (%d permissions)", count)
	} else {
		log.Info("🔄 [INIT] Step 1: Seeding permission catalog...")
		if err := permissionService.SeedPermissions(ctx); err != nil {
			log.Fatalf("Failed to seed permission catalog: %v", err)
		}
		log.Info("✅ [INIT] Step 1: Permission catalog ready")
	}

	// 2. Role Administrator (nếu chưa có) với đầy đủ quyền trong danh mục
	log.Info("🔄 [INIT] Step 2: Ensuring Administrator role...")
	if err := roleService.EnsureAdministratorRole(ctx); err != nil {
		log.Fatalf("Failed to ensure Administrator role: %v", err)
	}
	log.Info("✅ [INIT] Step 2: Administrator role ready")

	// 3. Đăng ký callback kiểm tra Administrator cho tầng base service
	// (cho phép admin sửa dữ liệu hệ thống qua validate IsSystem)
	userService.RegisterAdminCheck()

	log.Info("✅ [INIT] InitDefaultData completed successfully")
}
