package dto

type IssuedLinkDTO struct {
	RelativePath string `json:"relative_path"`
	AbsoluteURL  string `json:"absolute_url"`
	Token        string `json:"token"`
}
