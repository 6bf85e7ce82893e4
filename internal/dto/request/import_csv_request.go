package request

// ImportCsvRequest 从 CSV 导入网次请求
// 使用位置:
//   - internal/handler/export_handler.go: ImportCSV
type ImportCsvRequest struct {
	CsvText string `json:"csvText" binding:"required"` // 导出格式的 CSV 全文
}
