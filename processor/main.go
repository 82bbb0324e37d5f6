// Command processor watches a drop folder for gate pass CSV files
// exported by the upstream ERP, imports each file once as a draft gate
// pass, and mails a summary of every run.
package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wms-api/config"
	"wms-api/controllers/idgen"
	"wms-api/database"
	"wms-api/lineitem"
	"wms-api/models"
	"wms-api/repositories"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

func main() {
	config.LoadConfig()
	idgen.Init()

	db, err := database.GetDBConnection(config.DBUnit)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Watching drop folder:", config.DropFolder)
	for {
		processAllCSV(db)
		time.Sleep(time.Minute)
	}
}

func processAllCSV(db *gorm.DB) {
	files, err := os.ReadDir(config.DropFolder)
	if err != nil {
		log.Println("Failed to read drop folder:", err)
		return
	}

	var imported, failed []string
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".csv" {
			continue
		}

		if alreadyProcessed(db, file.Name()) {
			continue
		}

		path := filepath.Join(config.DropFolder, file.Name())
		gatePassNo, err := importGatePassCSV(db, path)
		if err != nil {
			log.Printf("Import %s failed: %v", file.Name(), err)
			failed = append(failed, fmt.Sprintf("%s: %v", file.Name(), err))
			continue
		}

		info, _ := file.Info()
		modified := time.Now()
		if info != nil {
			modified = info.ModTime()
		}
		db.Create(&models.FileLog{Filename: file.Name(), DateModified: modified})

		log.Printf("Imported %s as %s", file.Name(), gatePassNo)
		imported = append(imported, fmt.Sprintf("%s -> %s", file.Name(), gatePassNo))
	}

	if len(imported) > 0 || len(failed) > 0 {
		sendSummaryMail(imported, failed)
	}
}

func alreadyProcessed(db *gorm.DB, filename string) bool {
	var fileLog models.FileLog
	err := db.Where("filename = ?", filename).First(&fileLog).Error
	return err == nil
}

// importGatePassCSV creates one draft gate pass from a CSV drop.
// Columns: supplier code, invoice no, part no, batch no, invoice qty,
// received qty, damage qty. Derived quantities are recomputed here, not
// trusted from the file.
func importGatePassCSV(db *gorm.DB, path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return "", fmt.Errorf("read header: %w", err)
	}
	if len(header) < 7 {
		return "", errors.New("unexpected column count")
	}

	mapping, _ := lineitem.MappingFor("gate_pass")
	store := lineitem.NewStore(mapping)

	supplierCode := ""
	invoiceNo := ""
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("read row: %w", err)
		}
		if len(record) < 7 || strings.TrimSpace(record[2]) == "" {
			continue
		}

		if supplierCode == "" {
			supplierCode = strings.TrimSpace(record[0])
			invoiceNo = strings.TrimSpace(record[1])
		}

		item := lineitem.NewItem()
		item.PartNo = strings.ToUpper(strings.TrimSpace(record[2]))
		item.BatchNo = strings.TrimSpace(record[3])
		id := store.Insert(item)
		store.Update(id, lineitem.RoleInvoice, record[4])
		store.Update(id, lineitem.RoleReceived, record[5])
		store.Update(id, lineitem.RoleDamage, record[6])
	}

	if store.Len() == 0 {
		return "", errors.New("no data rows")
	}

	var supplier models.Supplier
	if err := db.First(&supplier, "supplier_code = ?", supplierCode).Error; err != nil {
		return "", fmt.Errorf("supplier not found: %s", supplierCode)
	}

	tx := db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	repo := repositories.NewGatePassRepository(tx)
	gatePassNo, err := repo.GenerateGatePassNo()
	if err != nil {
		tx.Rollback()
		return "", err
	}

	totals := lineitem.Aggregate(store.Items())
	header2 := models.GatePassHeader{
		GatePassNo:   gatePassNo,
		GatePassDate: time.Now().Format("2006-01-02"),
		SupplierId:   int(supplier.ID),
		Supplier:     supplier.SupplierCode,
		InvoiceNo:    invoiceNo,
		Status:       "draft",
		Remarks:      "Imported from " + filepath.Base(path),
		TotalLine:    totals.Lines,
		TotalQty:     int(totals.TotalNet),
	}
	if err := tx.Create(&header2).Error; err != nil {
		tx.Rollback()
		return "", err
	}

	for _, item := range store.Items() {
		var product models.Product
		if err := tx.First(&product, "part_no = ?", item.PartNo).Error; err != nil {
			tx.Rollback()
			return "", fmt.Errorf("part not found: %s", item.PartNo)
		}

		detail := models.GatePassDetail{
			GatePassId:  header2.ID,
			GatePassNo:  header2.GatePassNo,
			ItemId:      int(product.ID),
			PartNo:      product.PartNo,
			Description: product.Description,
			SKU:         product.SKU,
			BatchNo:     item.BatchNo,
			Uom:         product.Uom,
			InvoiceQty:  int(item.Get(lineitem.RoleInvoice)),
			ReceivedQty: int(item.Get(lineitem.RoleReceived)),
			ShortQty:    int(item.Get(lineitem.RoleShort)),
			DamageQty:   int(item.Get(lineitem.RoleDamage)),
			NetQty:      int(item.Get(lineitem.RoleNet)),
		}
		if err := tx.Create(&detail).Error; err != nil {
			tx.Rollback()
			return "", err
		}
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return "", err
	}

	return gatePassNo, nil
}

func sendSummaryMail(imported, failed []string) {
	if config.MailTo == "" {
		return
	}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("Gate pass import run at %s\n\n", time.Now().Format(time.RFC1123)))
	if len(imported) > 0 {
		body.WriteString("Imported:\n")
		for _, line := range imported {
			body.WriteString("  " + line + "\n")
		}
	}
	if len(failed) > 0 {
		body.WriteString("Failed:\n")
		for _, line := range failed {
			body.WriteString("  " + line + "\n")
		}
	}

	m := gomail.NewMessage()
	m.SetHeader("From", config.MailFrom)
	m.SetHeader("To", config.MailTo)
	m.SetHeader("Subject", "Gate pass CSV import summary")
	m.SetBody("text/plain", body.String())

	d := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		log.Println("Failed to send summary mail:", err)
	}
}
