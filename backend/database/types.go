package database

type Image struct {
	Id        int64  `db:"id,omitempty"`
	Name      string `db:"name"`
	FileName  string `db:"file_name"`
	Directory string `db:"directory"`
	ByteSize  int64  `db:"byte_size"`
}
