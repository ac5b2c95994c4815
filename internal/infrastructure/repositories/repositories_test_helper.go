package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		name TEXT,
		auth_provider TEXT NOT NULL,
		password_hash TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		last_login DATETIME,
		created_at DATETIME
	);`)
}

func createBusinessProfileTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE business_profiles (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		business_type TEXT,
		phone TEXT,
		website TEXT,
		address TEXT,
		latitude REAL,
		longitude REAL,
		timezone TEXT,
		quote_slogan TEXT,
		identification_mark TEXT,
		published BOOLEAN NOT NULL DEFAULT 1,
		version INTEGER NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createServiceTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE services (
		id TEXT PRIMARY KEY,
		business_id TEXT NOT NULL,
		service_type TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		price REAL NOT NULL,
		currency TEXT NOT NULL DEFAULT 'INR',
		is_available BOOLEAN NOT NULL DEFAULT 1,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE restaurant_service_fields (
		service_id TEXT PRIMARY KEY,
		cuisine_type TEXT NOT NULL,
		dietary_tags TEXT,
		portion_size TEXT,
		is_vegan BOOLEAN DEFAULT 0
	);`)
	mustExec(t, db, `CREATE TABLE salon_service_fields (
		service_id TEXT PRIMARY KEY,
		duration_minutes INTEGER,
		stylist_required BOOLEAN DEFAULT 0,
		gender_specific TEXT NOT NULL DEFAULT 'unisex'
	);`)
}

func createMediaAssetTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE media_assets (
		id TEXT PRIMARY KEY,
		business_id TEXT NOT NULL,
		media_type TEXT NOT NULL,
		url TEXT NOT NULL,
		alt_text TEXT,
		uploaded_at DATETIME
	);`)
}

func createCouponTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE coupons (
		id TEXT PRIMARY KEY,
		business_id TEXT NOT NULL,
		code TEXT NOT NULL,
		description TEXT,
		discount_value TEXT NOT NULL,
		valid_from DATETIME NOT NULL,
		valid_until DATETIME NOT NULL,
		terms_conditions TEXT,
		is_active BOOLEAN DEFAULT 1
	);`)
}

func createOperationalInfoTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE operational_info (
		id TEXT PRIMARY KEY,
		business_id TEXT NOT NULL,
		opening_hours TEXT NOT NULL,
		closing_hours TEXT NOT NULL,
		off_days TEXT DEFAULT '[]',
		delivery_options TEXT,
		reservation_options TEXT,
		wifi_available BOOLEAN DEFAULT 0,
		accessibility_features TEXT,
		nearby_parking_spot TEXT,
		special_notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAiMetadataTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE ai_metadata (
		id TEXT PRIMARY KEY,
		business_id TEXT NOT NULL UNIQUE,
		keywords TEXT,
		extracted_insights TEXT,
		detected_entities TEXT,
		intent_labels TEXT,
		generated_at DATETIME NOT NULL
	);`)
}

func createJsonLDFeedTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE jsonld_feed (
		id TEXT PRIMARY KEY,
		business_id TEXT NOT NULL,
		schema_type TEXT NOT NULL,
		json_ld_data TEXT NOT NULL,
		is_valid BOOLEAN NOT NULL DEFAULT 0,
		validation_errors TEXT,
		generated_at DATETIME NOT NULL
	);`)
}

func createVisibilityTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE visibility_check_request (
		id TEXT PRIMARY KEY,
		business_id TEXT NOT NULL,
		check_type TEXT NOT NULL,
		input_data TEXT,
		requested_at DATETIME NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE visibility_check_result (
		id TEXT PRIMARY KEY,
		request_id TEXT NOT NULL,
		business_id TEXT NOT NULL,
		visibility_score REAL,
		issues_found TEXT,
		recommendations TEXT,
		output_snapshot TEXT,
		completed_at DATETIME NOT NULL
	);`)
	mustExec(t, db, `CREATE TABLE visibility_suggestions (
		id TEXT PRIMARY KEY,
		business_id TEXT NOT NULL,
		suggestion_type TEXT NOT NULL,
		title TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		suggested_at DATETIME NOT NULL,
		resolved_at DATETIME
	);`)
}
