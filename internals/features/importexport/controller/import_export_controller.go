package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "academia_backend/internals/features/importexport/service"
	configService "academia_backend/internals/features/system/configuration/service"
	helper "academia_backend/internals/helpers"
)

const maxUploadBytes = 5 * 1024 * 1024 // 5 MB

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Allow-list de MIME: solo formatos de planilla, legado y moderno.
var allowedUploadTypes = map[string]bool{
	xlsxContentType:            true,
	"application/vnd.ms-excel": true, // .xls legado
}

type ImportExportController struct {
	DB     *gorm.DB
	Config *configService.ConfigurationService
}

func NewImportExportController(db *gorm.DB, cfg *configService.ConfigurationService) *ImportExportController {
	return &ImportExportController{DB: db, Config: cfg}
}

/* ======================== IMPORT ======================== */
// POST /api/members/import  (multipart, campo "file")
func (h *ImportExportController) Import(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Falta el archivo de planilla (campo \"file\")")
	}
	if fh.Size > maxUploadBytes {
		return helper.JsonError(c, fiber.StatusRequestEntityTooLarge, "La planilla supera el máximo de 5 MB")
	}
	if ct := fh.Header.Get("Content-Type"); ct != "" && !allowedUploadTypes[ct] {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType,
			"Tipo de archivo no admitido: se aceptan planillas .xlsx o .xls")
	}

	file, err := fh.Open()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo leer el archivo")
	}
	defer file.Close()

	rows, err := service.ParseWorkbook(file)
	if err != nil {
		// planilla vacía o ilegible: fallo total, distinto de "cero filas válidas"
		if errors.Is(err, service.ErrEmptyWorkbook) || errors.Is(err, service.ErrBadHeader) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	imp := service.NewImporter(
		service.NewGormMemberStore(h.DB),
		service.NewGormModalityCatalog(h.DB),
		service.NewGormPaymentStore(h.DB),
	)
	report, err := imp.Run(c.UserContext(), rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "La importación no pudo ejecutarse: "+err.Error())
	}

	log.Printf("[IMPORT] filas=%d creados=%d duplicados=%d rechazados=%d",
		report.TotalProcessed, report.Created, report.Duplicates, report.Rejected)
	return helper.JsonOK(c, "Importación procesada", report)
}

/* ======================== EXPORT ======================== */
// GET /api/members/export
func (h *ImportExportController) Export(c *fiber.Ctx) error {
	cfg, err := h.Config.Get(c.UserContext())
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	f, err := service.BuildMemberExport(c.UserContext(), h.DB, cfg)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo generar la planilla")
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "No se pudo serializar la planilla")
	}

	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="socios.xlsx"`)
	return c.Send(buf.Bytes())
}
