package domain

import (
	"fmt"
)

const (
	ErrCodeValidation  string = "VALIDATION_ERROR"
	ErrCodeNotFound    string = "NOT_FOUND"
	ErrCodeInternal    string = "INTERNAL_ERROR"
	ErrCodeExternal    string = "EXTERNAL_SERVICE_ERROR"
	ErrCodeServiceBusy string = "SERVICE_BUSY"
	ErrCodeRateLimited string = "RATE_LIMITED"
)

// user facing messages, shown as is on the pages
const (
	MsgServiceBusy        = "Server Google AI sedang sibuk. Silakan coba lagi dalam beberapa menit."
	MsgRateLimited        = "Terlalu banyak permintaan. Silakan tunggu sebentar dan coba lagi."
	MsgImageFailed        = "Gagal menganalisis gambar. Silakan periksa koneksi internet dan coba lagi."
	MsgTextFailed         = "Gagal menganalisis teks. Silakan periksa koneksi internet dan coba lagi."
	MsgTextSearchFailed   = "Gagal mencari informasi sejarah"
	MsgTextSearchRequired = "Query dan prompt diperlukan"
	MsgHistoryNotFound    = "Maaf, tidak dapat menemukan informasi tentang tokoh atau peristiwa tersebut. Pastikan ejaan sudah benar."
	MsgCountryNotFound    = "Negara tidak ditemukan. Coba gunakan nama negara dalam bahasa Inggris (contoh: Indonesia, Singapore, Malaysia)"
	MsgCountryInvalid     = "Data negara tidak valid atau tidak lengkap"
	MsgCountryFailed      = "Terjadi kesalahan saat mengambil data negara. Periksa koneksi internet Anda."
	MsgRequestLimited     = "Terlalu banyak permintaan dari alamat ini. Silakan tunggu sebentar."
)

type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Cause   error  `json:"cause"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("Message:%s, Cause:%v", e.Message, e.Cause)
	}
	return fmt.Sprintf("Message:%s", e.Message)

}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

func NewDomainError(code, msg string, cause error) *DomainError {
	return &DomainError{Code: code, Message: msg, Cause: cause}
}

var (
	ErrEmptyImage       = &DomainError{Code: ErrCodeValidation, Message: "Silakan upload gambar terlebih dahulu!", Cause: nil}
	ErrEmptyFood        = &DomainError{Code: ErrCodeValidation, Message: "Silakan upload gambar dan masukkan jenis makanan!", Cause: nil}
	ErrEmptyText        = &DomainError{Code: ErrCodeValidation, Message: "Silakan masukkan teks untuk dianalisis!", Cause: nil}
	ErrEmptyHistory     = &DomainError{Code: ErrCodeValidation, Message: "Silakan masukkan nama tokoh atau peristiwa sejarah!", Cause: nil}
	ErrEmptyCountry     = &DomainError{Code: ErrCodeValidation, Message: "Silakan masukkan nama negara!", Cause: nil}
	ErrEmptyTextSearch  = &DomainError{Code: ErrCodeValidation, Message: MsgTextSearchRequired, Cause: nil}
	ErrUnknownImageKind = &DomainError{Code: ErrCodeValidation, Message: "jenis deteksi gambar tidak dikenal", Cause: nil}
	ErrUnknownAnalysis  = &DomainError{Code: ErrCodeValidation, Message: "jenis analisis teks tidak dikenal", Cause: nil}
	ErrNotAnImage       = &DomainError{Code: ErrCodeValidation, Message: "file yang diunggah bukan gambar", Cause: nil}
	ErrInvalidBase64    = &DomainError{Code: ErrCodeValidation, Message: "data gambar base64 tidak valid", Cause: nil}
	ErrRedisConnection  = &DomainError{Code: ErrCodeInternal, Message: "failed to connect to redis", Cause: nil}
)
