package notification

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Key identifies a localized notification message.
type Key string

const (
	SignInSuccess           Key = "signin.success"
	SignInInvalidEmail      Key = "signin.invalid_email"
	SignInUserNotFound      Key = "signin.user_not_found"
	SignInWrongPassword     Key = "signin.wrong_password"
	SignInInvalidCredential Key = "signin.invalid_credential"
	SignInFailed            Key = "signin.failed"
	SignOutSuccess          Key = "signout.success"
	SignOutFailed           Key = "signout.failed"
	AuthRequired            Key = "auth.required"

	BOMFetchFailed   Key = "bom.fetch_failed"
	BOMNotFound      Key = "bom.not_found"
	BOMCreateSuccess Key = "bom.create_success"
	BOMCreateFailed  Key = "bom.create_failed"
	BOMUpdateSuccess Key = "bom.update_success"
	BOMUpdateFailed  Key = "bom.update_failed"
	BOMDeleteConfirm Key = "bom.delete_confirm"
	BOMDeleteSuccess Key = "bom.delete_success"
	BOMDeleteFailed  Key = "bom.delete_failed"
	BOMLastItem      Key = "bom.last_item"
	BOMInvalidEdit   Key = "bom.invalid_edit"
	DraftNotFound    Key = "draft.not_found"

	MaterialFetchFailed   Key = "material.fetch_failed"
	MaterialNotFound      Key = "material.not_found"
	MaterialCreateSuccess Key = "material.create_success"
	MaterialCreateFailed  Key = "material.create_failed"
	MaterialUpdateSuccess Key = "material.update_success"
	MaterialUpdateFailed  Key = "material.update_failed"
	MaterialDeleteConfirm Key = "material.delete_confirm"
	MaterialDeleteSuccess Key = "material.delete_success"
	MaterialDeleteFailed  Key = "material.delete_failed"
	MaterialHistoryFailed Key = "material.history_failed"

	CategoryFetchFailed Key = "category.fetch_failed"

	PricingFetchFailed   Key = "pricing.fetch_failed"
	PricingNotFound      Key = "pricing.not_found"
	PricingApplySuccess  Key = "pricing.apply_success"
	PricingApplyFailed   Key = "pricing.apply_failed"
	PricingDeleteConfirm Key = "pricing.delete_confirm"
	PricingDeleteSuccess Key = "pricing.delete_success"
	PricingDeleteFailed  Key = "pricing.delete_failed"
	PricingUpdateSuccess Key = "pricing.update_success"
	PricingUpdateFailed  Key = "pricing.update_failed"
	PricingSaveSuccess   Key = "pricing.save_success"
	PricingSaveFailed    Key = "pricing.save_failed"
	PricingNoWorkingSet  Key = "pricing.no_working_set"

	AnalysisFetchFailed   Key = "analysis.fetch_failed"
	AnalysisSaveSuccess   Key = "analysis.save_success"
	AnalysisSaveFailed    Key = "analysis.save_failed"
	AnalysisDeleteConfirm Key = "analysis.delete_confirm"
	AnalysisDeleteSuccess Key = "analysis.delete_success"
	AnalysisDeleteFailed  Key = "analysis.delete_failed"

	ConfirmNothingPending Key = "confirm.nothing_pending"
	ConfirmBusy           Key = "confirm.busy"
	RequestInvalid        Key = "request.invalid"
	RouteNotFound         Key = "route.not_found"
	InternalError         Key = "internal"
)

var catalog = map[Key][2]string{
	SignInSuccess:           {"登入成功！", "Signed in successfully!"},
	SignInInvalidEmail:      {"信箱格式錯誤", "Invalid email format"},
	SignInUserNotFound:      {"此信箱尚未註冊", "This email is not registered"},
	SignInWrongPassword:     {"密碼錯誤", "Wrong password"},
	SignInInvalidCredential: {"信箱或密碼錯誤", "Wrong email or password"},
	SignInFailed:            {"登入失敗，請稍後再試", "Sign-in failed, please try again later"},
	SignOutSuccess:          {"已登出", "Signed out"},
	SignOutFailed:           {"登出失敗，請稍後再試", "Sign-out failed, please try again later"},
	AuthRequired:            {"需要登入才能查看此頁面", "You need to sign in to view this page"},

	BOMFetchFailed:   {"獲取數據時發生錯誤", "Failed to load data"},
	BOMNotFound:      {"找不到指定的 BOM 表", "BOM table not found"},
	BOMCreateSuccess: {"BOM 表建立成功", "BOM table created"},
	BOMCreateFailed:  {"建立 BOM 表時發生錯誤", "Failed to create the BOM table"},
	BOMUpdateSuccess: {"BOM 表修改成功", "BOM table updated"},
	BOMUpdateFailed:  {"修改 BOM 表時發生錯誤", "Failed to update the BOM table"},
	BOMDeleteConfirm: {"確定要刪除此 BOM 表嗎？", "Delete this BOM table?"},
	BOMDeleteSuccess: {"BOM 表已成功刪除", "BOM table deleted"},
	BOMDeleteFailed:  {"刪除 BOM 表時發生錯誤", "Failed to delete the BOM table"},
	BOMLastItem:      {"至少需要保留一個項目", "At least one item is required"},
	BOMInvalidEdit:   {"無效的項目修改", "Invalid item change"},
	DraftNotFound:    {"編輯內容已失效，請重新開啟", "The edit session expired, please reopen it"},

	MaterialFetchFailed:   {"獲取共用料時發生錯誤", "Failed to load shared materials"},
	MaterialNotFound:      {"找不到指定的共用料", "Shared material not found"},
	MaterialCreateSuccess: {"共用料建立成功", "Shared material created"},
	MaterialCreateFailed:  {"建立共用料時發生錯誤", "Failed to create the shared material"},
	MaterialUpdateSuccess: {"共用料修改成功", "Shared material updated"},
	MaterialUpdateFailed:  {"修改共用料時發生錯誤", "Failed to update the shared material"},
	MaterialDeleteConfirm: {"確定要刪除此共用料嗎？", "Delete this shared material?"},
	MaterialDeleteSuccess: {"共用料已成功刪除", "Shared material deleted"},
	MaterialDeleteFailed:  {"刪除共用料時發生錯誤", "Failed to delete the shared material"},
	MaterialHistoryFailed: {"獲取歷史記錄時發生錯誤", "Failed to load the history"},

	CategoryFetchFailed: {"獲取類別時發生錯誤", "Failed to load categories"},

	PricingFetchFailed:   {"獲取歷史報價資料時出錯", "Failed to load saved pricing schemes"},
	PricingNotFound:      {"找不到指定的報價方案", "Pricing scheme not found"},
	PricingApplySuccess:  {"已載入報價方案", "Pricing scheme loaded"},
	PricingApplyFailed:   {"載入報價方案時發生錯誤", "Failed to load the pricing scheme"},
	PricingDeleteConfirm: {"確定要刪除這個報價方案嗎？此操作無法復原。", "Delete this pricing scheme? This cannot be undone."},
	PricingDeleteSuccess: {"報價方案已刪除", "Pricing scheme deleted"},
	PricingDeleteFailed:  {"刪除報價方案時出錯", "Failed to delete the pricing scheme"},
	PricingUpdateSuccess: {"報價方案已更新", "Pricing scheme updated"},
	PricingUpdateFailed:  {"更新報價方案時出錯", "Failed to update the pricing scheme"},
	PricingSaveSuccess:   {"報價方案已儲存", "Pricing scheme saved"},
	PricingSaveFailed:    {"儲存報價方案時出錯", "Failed to save the pricing scheme"},
	PricingNoWorkingSet:  {"尚未載入報價方案", "No pricing scheme loaded"},

	AnalysisFetchFailed:   {"獲取數據時出錯", "Failed to load saved analyses"},
	AnalysisSaveSuccess:   {"數據已成功保存", "Analysis saved"},
	AnalysisSaveFailed:    {"保存數據時出錯", "Failed to save the analysis"},
	AnalysisDeleteConfirm: {"確定要刪除這筆數據嗎？", "Delete this analysis?"},
	AnalysisDeleteSuccess: {"數據已成功刪除", "Analysis deleted"},
	AnalysisDeleteFailed:  {"刪除數據時出錯", "Failed to delete the analysis"},

	ConfirmNothingPending: {"沒有待確認的刪除項目", "Nothing is waiting for confirmation"},
	ConfirmBusy:           {"刪除進行中，請稍候", "A delete is already in progress"},
	RequestInvalid:        {"請求格式錯誤", "Invalid request"},
	RouteNotFound:         {"找不到此頁面", "Page not found"},
	InternalError:         {"發生未預期的錯誤", "Unexpected error"},
}

func init() {
	for key, msgs := range catalog {
		_ = message.SetString(language.TraditionalChinese, string(key), msgs[0])
		_ = message.SetString(language.English, string(key), msgs[1])
	}
}
