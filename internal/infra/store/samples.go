package store

import "github.com/nutrivida/site-backend/internal/entity"

// Dados de demonstração usados quando o banco está indisponível ou vazio.
// As funções devolvem cópias novas; quem chama pode mutar à vontade.

func SampleLeads() []entity.Lead {
	return []entity.Lead{
		{
			ID:       "1",
			Nome:     "Maria Silva",
			Email:    "maria@email.com",
			Telefone: "(11) 99999-9999",
			Objetivo: entity.ObjetivoEmagrecimento,
			Detalhes: "Preciso perder 10kg para meu casamento",
			Data:     "2024-01-15T14:30:00.000Z",
			Status:   entity.LeadStatusNovo,
		},
		{
			ID:       "2",
			Nome:     "João Santos",
			Email:    "joao@email.com",
			Telefone: "(11) 88888-8888",
			Objetivo: entity.ObjetivoGanhoMassa,
			Detalhes: "Quero ganhar massa muscular para competir",
			Data:     "2024-01-14T09:15:00.000Z",
			Status:   entity.LeadStatusContatado,
		},
		{
			ID:       "3",
			Nome:     "Ana Costa",
			Email:    "ana@email.com",
			Telefone: "(11) 77777-7777",
			Objetivo: entity.ObjetivoReeducacao,
			Detalhes: "Tenho diabetes e preciso melhorar minha alimentação",
			Data:     "2024-01-13T16:45:00.000Z",
			Status:   entity.LeadStatusAgendado,
		},
	}
}

func SampleDepoimentos() []entity.Depoimento {
	return []entity.Depoimento{
		{
			ID:        "1",
			Nome:      "Maria Silva",
			Iniciais:  "MS",
			Texto:     "Perdi 15kg em 4 meses seguindo o plano alimentar. Me sinto muito mais disposta e saudável!",
			Resultado: "Perdeu 15kg",
			Estrelas:  5,
			Ativo:     true,
		},
		{
			ID:        "2",
			Nome:      "João Santos",
			Iniciais:  "JS",
			Texto:     "Consegui ganhar massa muscular de forma saudável. O acompanhamento foi fundamental para meus resultados.",
			Resultado: "Ganhou 8kg de massa magra",
			Estrelas:  5,
			Ativo:     true,
		},
		{
			ID:        "3",
			Nome:      "Ana Costa",
			Iniciais:  "AC",
			Texto:     "Aprendi a me alimentar melhor e agora tenho muito mais energia no dia a dia. Recomendo!",
			Resultado: "Melhorou disposição e saúde",
			Estrelas:  5,
			Ativo:     true,
		},
	}
}

func DefaultConfig() entity.ConfigSite {
	return entity.ConfigSite{
		NomeSite:           "NutriVida",
		CRN:                "12345-SP",
		Telefone:           "(11) 99999-9999",
		Email:              "contato@nutrivida.com",
		Endereco:           "São Paulo, SP",
		HorarioAtendimento: "Segunda a Sexta: 8h às 18h\nSábado: 8h às 12h",
		HeroTitulo:         "Transforme sua saúde com nutrição personalizada",
		HeroSubtitulo:      "Planos alimentares sob medida para seus objetivos, com acompanhamento profissional e resultados comprovados.",
		SobreTexto:         "Sou uma nutricionista apaixonada por ajudar pessoas a alcançarem seus objetivos de saúde através da alimentação. Com anos de experiência e centenas de pacientes atendidos, desenvolvo planos personalizados que se adaptam ao seu estilo de vida.",
		Estatisticas: entity.Estatisticas{
			Clientes:    "500+",
			Sucesso:     "95%",
			Experiencia: "8+",
		},
	}
}
