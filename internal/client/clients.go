package client

import "time"

type Clients struct {
	*FilesAPI
}

func InitClients(timeout time.Duration) Clients {
	return Clients{
		FilesAPI: NewFilesAPI(timeout),
	}
}
