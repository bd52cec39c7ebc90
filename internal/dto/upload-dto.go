package dto

type UploadedFileDTO struct {
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimetype"`
}

type DeleteFileDTO struct {
	FilePath string `json:"file_path" validate:"required"`
}
