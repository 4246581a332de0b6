package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/career --output domain/career --outpkg careermock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name RosterProvider --dir ../domain/player --output domain/player --outpkg playermock --filename roster_provider_mock.go
