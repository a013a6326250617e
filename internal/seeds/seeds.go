package seeds

func SeedAll() error {
	if err := SeedBooks(); err != nil {
		return err
	}
	return nil
}
